package catalogue

import "toxiscope/models"

// Dimensionen, wie sie in Katalog und Produktbewertungen geschrieben werden.
const (
	DimCarcinogenicity      = "Carcinogenicity"
	DimEndocrineDisruption  = "Endocrine Disruption"
	DimReproductiveToxicity = "Reproductive Toxicity"
	DimNeurotoxicity        = "Neurotoxicity"
	DimDevelopmental        = "Developmental Toxicity"
	DimRespiratory          = "Respiratory Toxicity"
	DimImmunotoxicity       = "Immunotoxicity"
)

// Produktkategorien des Katalogs.
const (
	CatCookware         = "Cookware"
	CatBabyProducts     = "Baby Products"
	CatPersonalCare     = "Personal Care"
	CatHomeFurnishings  = "Home Furnishings"
	CatKitchenware      = "Kitchenware"
	CatFoodPackaging    = "Food Packaging"
	CatCleaningProducts = "Cleaning Products"
)

var academicStudies = []models.ChemicalStudy{
	{
		ID:                      "pfoa-vieira-2013",
		Title:                   "Perfluorooctanoic acid exposure and cancer outcomes in a contaminated community: a geographic analysis",
		Authors:                 []string{"Vieira VM", "Hoffman K", "Shin HM", "Weinberg JM", "Webster TF", "Fletcher T"},
		Journal:                 "Environmental Health Perspectives",
		Year:                    2013,
		DOI:                     "10.1289/ehp.1103569",
		PMID:                    "23221922",
		KeyFindings:             "Residents in the most highly exposed water districts showed elevated odds of kidney and testicular cancer relative to unexposed areas.",
		ImpactScore:             94,
		StudyType:               models.StudyCaseControl,
		Chemicals:               []string{"PFOA"},
		ToxicologicalDimensions: []string{DimCarcinogenicity},
		ProductCategories:       []string{CatCookware},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Cited in the IARC Monograph 135 evaluation of PFOA", "Informed EPA 2016 lifetime health advisory"},
	},
	{
		ID:                      "pfoa-barry-2013",
		Title:                   "Perfluorooctanoic acid (PFOA) exposures and incident cancers among adults living near a chemical plant",
		Authors:                 []string{"Barry V", "Winquist A", "Steenland K"},
		Journal:                 "Environmental Health Perspectives",
		Year:                    2013,
		DOI:                     "10.1289/ehp.1306615",
		PMID:                    "24007715",
		KeyFindings:             "Modelled cumulative PFOA serum concentration was positively associated with kidney and testicular cancer in the C8 Health Project cohort.",
		ImpactScore:             93,
		StudyType:               models.StudyCohort,
		Chemicals:               []string{"PFOA"},
		ToxicologicalDimensions: []string{DimCarcinogenicity},
		ProductCategories:       []string{CatCookware, CatFoodPackaging},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"C8 Science Panel probable link finding for kidney and testicular cancer"},
	},
	{
		ID:                      "pfas-steenland-2021",
		Title:                   "PFAS and cancer, a scoping review of the epidemiologic evidence",
		Authors:                 []string{"Steenland K", "Winquist A"},
		Journal:                 "Environmental Research",
		Year:                    2021,
		DOI:                     "10.1016/j.envres.2020.110690",
		PMID:                    "33385391",
		KeyFindings:             "Evidence is strongest for kidney and testicular cancer after PFOA exposure; findings for other sites and for PFOS remain inconsistent.",
		ImpactScore:             89,
		StudyType:               models.StudyReview,
		Chemicals:               []string{"PFOA", "PFOS", "PFAS"},
		ToxicologicalDimensions: []string{DimCarcinogenicity},
		ProductCategories:       []string{CatCookware, CatFoodPackaging},
		IsSeminal:               false,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Referenced in EPA 2024 PFAS drinking water rule"},
	},
	{
		ID:                      "ptfe-sajid-2018",
		Title:                   "Polytetrafluoroethylene pyrolysis products and polymer fume fever: a review of cookware overheating",
		Authors:                 []string{"Sajid M", "Ilyas M"},
		Journal:                 "Environmental Science and Pollution Research",
		Year:                    2018,
		KeyFindings:             "Non-stick coatings heated beyond 350 °C emit fluorinated particles and gases associated with acute respiratory symptoms.",
		ImpactScore:             78,
		StudyType:               models.StudyReview,
		Chemicals:               []string{"PTFE"},
		ToxicologicalDimensions: []string{DimRespiratory, DimCarcinogenicity},
		ProductCategories:       []string{CatCookware},
		IsSeminal:               false,
		MethodologicalQuality:   models.QualityMedium,
		RegulatoryImpact:        []string{"Consumer guidance on maximum non-stick cookware temperatures"},
	},
	{
		ID:                      "pfas-lau-2007",
		Title:                   "Perfluoroalkyl acids: a review of monitoring and toxicological findings",
		Authors:                 []string{"Lau C", "Anitole K", "Hodes C", "Lai D", "Pfahles-Hutchens A", "Seed J"},
		Journal:                 "Toxicological Sciences",
		Year:                    2007,
		DOI:                     "10.1093/toxsci/kfm128",
		PMID:                    "17519394",
		KeyFindings:             "PFOA and PFOS are persistent, bioaccumulative and produce hepatotoxicity, developmental toxicity and immune effects in laboratory animals.",
		ImpactScore:             95,
		StudyType:               models.StudyReview,
		Chemicals:               []string{"PFOA", "PFOS"},
		ToxicologicalDimensions: []string{DimDevelopmental, DimImmunotoxicity, DimCarcinogenicity},
		ProductCategories:       []string{CatCookware, CatFoodPackaging},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Basis for EPA PFOA Stewardship Program risk framing"},
	},
	{
		ID:                      "pfas-wen-2013",
		Title:                   "Perfluorinated chemicals and thyroid hormone levels in adults: NHANES 2007-2008",
		Authors:                 []string{"Wen LL", "Lin LY", "Su TC", "Chen PC", "Lin CY"},
		Journal:                 "American Journal of Epidemiology",
		Year:                    2013,
		DOI:                     "10.1093/aje/kwt132",
		PMID:                    "23788649",
		KeyFindings:             "Serum PFOA and PFOS were associated with altered total T4 and subclinical hypothyroidism in a nationally representative sample.",
		ImpactScore:             86,
		StudyType:               models.StudyEpidemiological,
		Chemicals:               []string{"PFOA", "PFOS"},
		ToxicologicalDimensions: []string{DimEndocrineDisruption},
		ProductCategories:       []string{CatCookware},
		IsSeminal:               false,
		MethodologicalQuality:   models.QualityMedium,
		RegulatoryImpact:        []string{},
	},
	{
		ID:                      "pfas-melzer-2010",
		Title:                   "Association between serum perfluorooctanoic acid (PFOA) and thyroid disease in the U.S. National Health and Nutrition Examination Survey",
		Authors:                 []string{"Melzer D", "Rice N", "Depledge MH", "Henley WE", "Galloway TS"},
		Journal:                 "Environmental Health Perspectives",
		Year:                    2010,
		DOI:                     "10.1289/ehp.0901584",
		PMID:                    "20089479",
		KeyFindings:             "Higher serum PFOA and PFOS concentrations were associated with current treated thyroid disease in adults.",
		ImpactScore:             92,
		StudyType:               models.StudyEpidemiological,
		Chemicals:               []string{"PFOA", "PFOS"},
		ToxicologicalDimensions: []string{DimEndocrineDisruption},
		ProductCategories:       []string{CatCookware, CatFoodPackaging},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Listed in ECHA PFOA restriction background document"},
	},
	{
		ID:                      "pfoa-fei-2009",
		Title:                   "Maternal levels of perfluorinated chemicals and subfecundity",
		Authors:                 []string{"Fei C", "McLaughlin JK", "Lipworth L", "Olsen J"},
		Journal:                 "Human Reproduction",
		Year:                    2009,
		DOI:                     "10.1093/humrep/den490",
		PMID:                    "19528769",
		KeyFindings:             "Higher maternal PFOA and PFOS levels were associated with longer time to pregnancy in the Danish National Birth Cohort.",
		ImpactScore:             90,
		StudyType:               models.StudyCohort,
		Chemicals:               []string{"PFOA", "PFOS"},
		ToxicologicalDimensions: []string{DimReproductiveToxicity},
		ProductCategories:       []string{CatCookware},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Cited in EFSA 2020 PFAS tolerable weekly intake opinion"},
	},
	{
		ID:                      "pfoa-fei-2007",
		Title:                   "Perfluorinated chemicals and fetal growth: a study within the Danish National Birth Cohort",
		Authors:                 []string{"Fei C", "McLaughlin JK", "Tarone RE", "Olsen J"},
		Journal:                 "Environmental Health Perspectives",
		Year:                    2007,
		DOI:                     "10.1289/ehp.10506",
		PMID:                    "18008004",
		KeyFindings:             "Maternal plasma PFOA was inversely associated with birth weight.",
		ImpactScore:             91,
		StudyType:               models.StudyCohort,
		Chemicals:               []string{"PFOA"},
		ToxicologicalDimensions: []string{DimReproductiveToxicity, DimDevelopmental},
		ProductCategories:       []string{CatCookware, CatBabyProducts},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Supporting evidence for EU REACH PFOA restriction"},
	},
	{
		ID:                      "pfas-grandjean-2012",
		Title:                   "Serum vaccine antibody concentrations in children exposed to perfluorinated compounds",
		Authors:                 []string{"Grandjean P", "Andersen EW", "Budtz-Jorgensen E", "Nielsen F", "Molbak K", "Weihe P", "Heilmann C"},
		Journal:                 "JAMA",
		Year:                    2012,
		DOI:                     "10.1001/jama.2011.2034",
		PMID:                    "22274686",
		KeyFindings:             "A doubling of PFOS and PFOA exposure was associated with substantially lower antibody concentrations after childhood vaccination.",
		ImpactScore:             97,
		StudyType:               models.StudyCohort,
		Chemicals:               []string{"PFOA", "PFOS"},
		ToxicologicalDimensions: []string{DimImmunotoxicity, DimDevelopmental},
		ProductCategories:       []string{CatCookware, CatFoodPackaging},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Critical study for EFSA 2020 PFAS tolerable weekly intake"},
	},
	{
		ID:                      "pfas-neuro-2016",
		Title:                   "Prenatal perfluoroalkyl substance exposure and neurobehavioral outcomes in childhood",
		Authors:                 []string{"Vuong AM", "Yolton K", "Webster GM", "Sjodin A", "Calafat AM", "Braun JM", "Dietrich KN", "Lanphear BP", "Chen A"},
		Journal:                 "Environmental Research",
		Year:                    2016,
		DOI:                     "10.1016/j.envres.2016.03.025",
		PMID:                    "27031805",
		KeyFindings:             "Prenatal PFOS and PFOA were associated with poorer executive function scores at ages 5 and 8, with mixed results across domains.",
		ImpactScore:             74,
		StudyType:               models.StudyCohort,
		Chemicals:               []string{"PFOA", "PFOS"},
		ToxicologicalDimensions: []string{DimNeurotoxicity},
		ProductCategories:       []string{CatCookware},
		IsSeminal:               false,
		MethodologicalQuality:   models.QualityMedium,
		RegulatoryImpact:        []string{},
	},
	{
		ID:                      "dev-grandjean-2014",
		Title:                   "Neurobehavioural effects of developmental toxicity",
		Authors:                 []string{"Grandjean P", "Landrigan PJ"},
		Journal:                 "The Lancet Neurology",
		Year:                    2014,
		DOI:                     "10.1016/S1474-4422(13)70278-3",
		PMID:                    "24556010",
		KeyFindings:             "Identifies developmental neurotoxicants including flame retardants and PFAS-adjacent chemicals and calls for precautionary testing.",
		ImpactScore:             96,
		StudyType:               models.StudyReview,
		Chemicals:               []string{"PBDEs", "Flame retardants", "PFOA"},
		ToxicologicalDimensions: []string{DimNeurotoxicity, DimDevelopmental},
		ProductCategories:       []string{CatHomeFurnishings, CatBabyProducts},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Frequently cited in TSCA reform testimony"},
	},
	{
		ID:                      "bpa-braun-2009",
		Title:                   "Prenatal bisphenol A exposure and early childhood behavior",
		Authors:                 []string{"Braun JM", "Yolton K", "Dietrich KN", "Hornung R", "Ye X", "Calafat AM", "Lanphear BP"},
		Journal:                 "Environmental Health Perspectives",
		Year:                    2009,
		DOI:                     "10.1289/ehp.0900979",
		PMID:                    "20049131",
		KeyFindings:             "Gestational BPA exposure, especially early in pregnancy, was associated with externalizing behaviour at two years, more strongly in girls.",
		ImpactScore:             93,
		StudyType:               models.StudyCohort,
		Chemicals:               []string{"BPA"},
		ToxicologicalDimensions: []string{DimNeurotoxicity, DimEndocrineDisruption},
		ProductCategories:       []string{CatBabyProducts, CatFoodPackaging},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Cited in FDA 2012 decision to end BPA use in baby bottles"},
	},
	{
		ID:                      "bpa-braun-pediatrics",
		Title:                   "Bisphenol A exposure and children's behavior",
		Authors:                 []string{"Braun JM", "Yolton K", "Dietrich KN", "Hornung R"},
		Journal:                 "Pediatrics",
		Year:                    2009,
		DOI:                     "10.1542/peds.2008-3259",
		PMID:                    "19736250",
		KeyFindings:             "Higher BPA exposure was associated with externalizing behaviours and anxiety or depression in children.",
		ImpactScore:             98,
		StudyType:               models.StudyCohort,
		Chemicals:               []string{"BPA"},
		ToxicologicalDimensions: []string{DimEndocrineDisruption, DimNeurotoxicity},
		ProductCategories:       []string{CatBabyProducts},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Referenced in EU Regulation 321/2011 banning BPA in infant feeding bottles"},
	},
	{
		ID:                      "bpa-vandenberg-2007",
		Title:                   "Human exposure to bisphenol A (BPA)",
		Authors:                 []string{"Vandenberg LN", "Hauser R", "Marcus M", "Olea N", "Welshons WV"},
		Journal:                 "Reproductive Toxicology",
		Year:                    2007,
		DOI:                     "10.1016/j.reprotox.2007.07.010",
		PMID:                    "17768031",
		KeyFindings:             "BPA leaches from polycarbonate and can linings, particularly with heat, and is detectable in the majority of the population.",
		ImpactScore:             95,
		StudyType:               models.StudyReview,
		Chemicals:               []string{"BPA"},
		ToxicologicalDimensions: []string{DimEndocrineDisruption, DimReproductiveToxicity},
		ProductCategories:       []string{CatBabyProducts, CatKitchenware, CatFoodPackaging},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Chapel Hill consensus statement on BPA"},
	},
	{
		ID:                      "bpa-lang-2008",
		Title:                   "Association of urinary bisphenol A concentration with medical disorders and laboratory abnormalities in adults",
		Authors:                 []string{"Lang IA", "Galloway TS", "Scarlett A", "Henley WE", "Depledge M", "Wallace RB", "Melzer D"},
		Journal:                 "JAMA",
		Year:                    2008,
		DOI:                     "10.1001/jama.300.11.1303",
		PMID:                    "18799442",
		KeyFindings:             "Higher urinary BPA was associated with cardiovascular disease, type 2 diabetes and liver-enzyme abnormalities.",
		ImpactScore:             94,
		StudyType:               models.StudyEpidemiological,
		Chemicals:               []string{"BPA"},
		ToxicologicalDimensions: []string{DimEndocrineDisruption},
		ProductCategories:       []string{CatKitchenware, CatFoodPackaging},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityMedium,
		RegulatoryImpact:        []string{"Prompted FDA review of BPA safety"},
	},
	{
		ID:                      "bpa-repro-2011",
		Title:                   "Bisphenol A and reproductive health: update of experimental and human evidence, 2007-2013",
		Authors:                 []string{"Peretz J", "Vrooman L", "Ricke WA", "Hunt PA", "Ehrlich S", "Hauser R", "Padmanabhan V", "Taylor HS", "Swan SH", "VandeVoort CA", "Flaws JA"},
		Journal:                 "Environmental Health Perspectives",
		Year:                    2014,
		DOI:                     "10.1289/ehp.1307728",
		PMID:                    "24786630",
		KeyFindings:             "Experimental and human data link BPA to altered ovarian function, reduced semen quality and adverse implantation outcomes.",
		ImpactScore:             88,
		StudyType:               models.StudyReview,
		Chemicals:               []string{"BPA"},
		ToxicologicalDimensions: []string{DimReproductiveToxicity},
		ProductCategories:       []string{CatBabyProducts, CatFoodPackaging},
		IsSeminal:               false,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"ECHA SVHC listing of BPA for reproductive toxicity"},
	},
	{
		ID:                      "bps-rochester-2015",
		Title:                   "Bisphenol S and F: a systematic review and comparison of the hormonal activity of bisphenol A substitutes",
		Authors:                 []string{"Rochester JR", "Bolden AL"},
		Journal:                 "Environmental Health Perspectives",
		Year:                    2015,
		DOI:                     "10.1289/ehp.1408989",
		PMID:                    "25775505",
		KeyFindings:             "BPS and BPF are as hormonally active as BPA, with estrogenic, antiestrogenic and androgenic effects of similar potency.",
		ImpactScore:             90,
		StudyType:               models.StudyMetaAnalysis,
		Chemicals:               []string{"BPS", "BPF", "BPA"},
		ToxicologicalDimensions: []string{DimEndocrineDisruption},
		ProductCategories:       []string{CatBabyProducts, CatKitchenware, CatFoodPackaging},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Cited in French ANSES assessment of BPA alternatives"},
	},
	{
		ID:                      "phthalate-swan-2005",
		Title:                   "Decrease in anogenital distance among male infants with prenatal phthalate exposure",
		Authors:                 []string{"Swan SH", "Main KM", "Liu F", "Stewart SL", "Kruse RL", "Calafat AM", "Mao CS", "Redmon JB", "Ternand CL", "Sullivan S", "Teague JL"},
		Journal:                 "Environmental Health Perspectives",
		Year:                    2005,
		DOI:                     "10.1289/ehp.8100",
		PMID:                    "16079079",
		KeyFindings:             "Prenatal phthalate metabolite levels were inversely related to anogenital distance in male infants.",
		ImpactScore:             97,
		StudyType:               models.StudyCohort,
		Chemicals:               []string{"Phthalates", "DEHP"},
		ToxicologicalDimensions: []string{DimReproductiveToxicity, DimEndocrineDisruption},
		ProductCategories:       []string{CatBabyProducts, CatPersonalCare},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Basis for CPSIA 2008 phthalate limits in children's products"},
	},
	{
		ID:                      "phthalate-engel-2010",
		Title:                   "Prenatal phthalate exposure is associated with childhood behavior and executive functioning",
		Authors:                 []string{"Engel SM", "Miodovnik A", "Canfield RL", "Zhu C", "Silva MJ", "Calafat AM", "Wolff MS"},
		Journal:                 "Environmental Health Perspectives",
		Year:                    2010,
		DOI:                     "10.1289/ehp.0901688",
		PMID:                    "20106747",
		KeyFindings:             "Low molecular weight phthalate metabolites were associated with poorer behavioural and executive-function scores.",
		ImpactScore:             87,
		StudyType:               models.StudyCohort,
		Chemicals:               []string{"Phthalates"},
		ToxicologicalDimensions: []string{DimNeurotoxicity},
		ProductCategories:       []string{CatBabyProducts, CatPersonalCare},
		IsSeminal:               false,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{},
	},
	{
		ID:                      "phthalate-radke-2018",
		Title:                   "Phthalate exposure and male reproductive outcomes: a systematic review of the human epidemiological evidence",
		Authors:                 []string{"Radke EG", "Braun JM", "Meeker JD", "Cooper GS"},
		Journal:                 "Environment International",
		Year:                    2018,
		DOI:                     "10.1016/j.envint.2018.09.029",
		PMID:                    "30292573",
		KeyFindings:             "Robust evidence links DEHP and DBP to reduced anogenital distance and lower semen quality.",
		ImpactScore:             91,
		StudyType:               models.StudyMetaAnalysis,
		Chemicals:               []string{"Phthalates", "DEHP", "DBP"},
		ToxicologicalDimensions: []string{DimReproductiveToxicity},
		ProductCategories:       []string{CatBabyProducts, CatPersonalCare, CatFoodPackaging},
		IsSeminal:               false,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Used in EPA IRIS phthalate assessments"},
	},
	{
		ID:                      "paraben-darbre-2004",
		Title:                   "Concentrations of parabens in human breast tumours",
		Authors:                 []string{"Darbre PD", "Aljarrah A", "Miller WR", "Coldham NG", "Sauer MJ", "Pope GS"},
		Journal:                 "Journal of Applied Toxicology",
		Year:                    2004,
		DOI:                     "10.1002/jat.958",
		PMID:                    "14745841",
		KeyFindings:             "Intact parabens were measured in breast tumour tissue, raising questions about dermal exposure from personal care products.",
		ImpactScore:             82,
		StudyType:               models.StudyExperimental,
		Chemicals:               []string{"Parabens"},
		ToxicologicalDimensions: []string{DimCarcinogenicity, DimEndocrineDisruption},
		ProductCategories:       []string{CatPersonalCare},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityLow,
		RegulatoryImpact:        []string{"Triggered EU SCCS review of paraben preservatives"},
	},
	{
		ID:                      "fragrance-steinemann-2016",
		Title:                   "Fragranced consumer products: exposures and effects from emissions",
		Authors:                 []string{"Steinemann A"},
		Journal:                 "Air Quality, Atmosphere & Health",
		Year:                    2016,
		DOI:                     "10.1007/s11869-016-0442-z",
		PMID:                    "27867426",
		KeyFindings:             "Over a third of surveyed adults reported respiratory or migraine symptoms from fragranced products; emissions include undisclosed VOCs.",
		ImpactScore:             72,
		StudyType:               models.StudyEpidemiological,
		Chemicals:               []string{"Synthetic fragrances", "VOCs"},
		ToxicologicalDimensions: []string{DimRespiratory},
		ProductCategories:       []string{CatPersonalCare, CatCleaningProducts},
		IsSeminal:               false,
		MethodologicalQuality:   models.QualityMedium,
		RegulatoryImpact:        []string{},
	},
	{
		ID:                      "triclosan-halden-2014",
		Title:                   "The Florence Statement on Triclosan and Triclocarban",
		Authors:                 []string{"Halden RU", "Lindeman AE", "Aiello AE", "Andrews D", "Arnold WA"},
		Journal:                 "Environmental Health Perspectives",
		Year:                    2017,
		DOI:                     "10.1289/EHP1788",
		PMID:                    "28632490",
		KeyFindings:             "Antimicrobial soaps offer no benefit over plain soap while triclosan shows endocrine activity and environmental persistence.",
		ImpactScore:             85,
		StudyType:               models.StudyReview,
		Chemicals:               []string{"Triclosan"},
		ToxicologicalDimensions: []string{DimEndocrineDisruption},
		ProductCategories:       []string{CatPersonalCare, CatCleaningProducts},
		IsSeminal:               false,
		MethodologicalQuality:   models.QualityMedium,
		RegulatoryImpact:        []string{"FDA 2016 ban of triclosan in consumer antiseptic washes"},
	},
	{
		ID:                      "pbde-herbstman-2010",
		Title:                   "Prenatal exposure to PBDEs and neurodevelopment",
		Authors:                 []string{"Herbstman JB", "Sjodin A", "Kurzon M", "Lederman SA", "Jones RS", "Rauh V", "Needham LL", "Tang D", "Niedzwiecki M", "Wang RY", "Perera F"},
		Journal:                 "Environmental Health Perspectives",
		Year:                    2010,
		DOI:                     "10.1289/ehp.0901340",
		PMID:                    "20056561",
		KeyFindings:             "Children with higher cord blood PBDE concentrations scored lower on tests of mental and physical development.",
		ImpactScore:             92,
		StudyType:               models.StudyCohort,
		Chemicals:               []string{"PBDEs", "Flame retardants"},
		ToxicologicalDimensions: []string{DimNeurotoxicity, DimDevelopmental},
		ProductCategories:       []string{CatHomeFurnishings},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Supported the EU and US phase-out of penta- and octa-BDE"},
	},
	{
		ID:                      "formaldehyde-salthammer-2010",
		Title:                   "Formaldehyde in the indoor environment",
		Authors:                 []string{"Salthammer T", "Mentese S", "Marutzky R"},
		Journal:                 "Chemical Reviews",
		Year:                    2010,
		DOI:                     "10.1021/cr800399g",
		PMID:                    "20184350",
		KeyFindings:             "Pressed-wood furnishings, carpets and textiles are major indoor formaldehyde sources, with emissions rising with temperature and humidity.",
		ImpactScore:             89,
		StudyType:               models.StudyReview,
		Chemicals:               []string{"Formaldehyde", "VOCs"},
		ToxicologicalDimensions: []string{DimCarcinogenicity, DimRespiratory},
		ProductCategories:       []string{CatHomeFurnishings},
		IsSeminal:               true,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Cited in WHO indoor air quality guideline for formaldehyde"},
	},
	{
		ID:                      "microplastics-li-2020",
		Title:                   "Microplastic release from the degradation of polypropylene feeding bottles during infant formula preparation",
		Authors:                 []string{"Li D", "Shi Y", "Yang L", "Xiao L", "Kehoe DK", "Gun'ko YK", "Boland JJ", "Wang JJ"},
		Journal:                 "Nature Food",
		Year:                    2020,
		DOI:                     "10.1038/s43016-020-00171-y",
		PMID:                    "37128153",
		KeyFindings:             "Polypropylene bottles released up to millions of microplastic particles per litre when exposed to hot water during formula preparation.",
		ImpactScore:             84,
		StudyType:               models.StudyExperimental,
		Chemicals:               []string{"Microplastics", "Polypropylene"},
		ToxicologicalDimensions: []string{DimDevelopmental},
		ProductCategories:       []string{CatBabyProducts, CatKitchenware},
		IsSeminal:               false,
		MethodologicalQuality:   models.QualityMedium,
		RegulatoryImpact:        []string{},
	},
	{
		ID:                      "pfas-sunderland-2019",
		Title:                   "A review of the pathways of human exposure to poly- and perfluoroalkyl substances (PFASs) and present understanding of health effects",
		Authors:                 []string{"Sunderland EM", "Hu XC", "Dassuncao C", "Tokranov AK", "Wagner CC", "Allen JG"},
		Journal:                 "Journal of Exposure Science & Environmental Epidemiology",
		Year:                    2019,
		DOI:                     "10.1038/s41370-018-0094-1",
		PMID:                    "30470793",
		KeyFindings:             "Diet, drinking water and consumer products including non-stick cookware and food packaging are the main PFAS exposure routes.",
		ImpactScore:             88,
		StudyType:               models.StudyReview,
		Chemicals:               []string{"PFAS", "PFOA", "PFOS", "PTFE"},
		ToxicologicalDimensions: []string{DimImmunotoxicity, DimEndocrineDisruption},
		ProductCategories:       []string{CatCookware, CatFoodPackaging},
		IsSeminal:               false,
		MethodologicalQuality:   models.QualityHigh,
		RegulatoryImpact:        []string{"Informed state-level PFAS bans in food packaging"},
	},
	{
		ID:                      "genx-epa-2021",
		Title:                   "Human health toxicity values for hexafluoropropylene oxide dimer acid and its ammonium salt (GenX chemicals)",
		Authors:                 []string{"US Environmental Protection Agency"},
		Journal:                 "EPA Office of Water",
		Year:                    2021,
		KeyFindings:             "GenX chemicals, used as PFOA replacements, cause liver, kidney and developmental effects in animals at low doses.",
		ImpactScore:             80,
		StudyType:               models.StudyReview,
		Chemicals:               []string{"GenX", "PFAS"},
		ToxicologicalDimensions: []string{DimDevelopmental, DimCarcinogenicity},
		ProductCategories:       []string{CatCookware},
		IsSeminal:               false,
		MethodologicalQuality:   models.QualityMedium,
		RegulatoryImpact:        []string{"Set EPA chronic reference dose for GenX chemicals"},
	},
}
