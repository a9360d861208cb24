package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"toxiscope/catalogue"
	"toxiscope/config"
	"toxiscope/providers"
	"toxiscope/providers/europepmc"
	"toxiscope/providers/unpaywall"
	"toxiscope/services"
)

// Gleicht den eingebauten Studienkatalog mit Europe PMC (und optional Unpaywall) ab
// und schreibt die Findings als JSON nach stdout.
func main() {
	onlyProblems := flag.Bool("problems", false, "nur Abweichungen, Fehler und fehlende Einträge ausgeben")
	concurrency := flag.Int("concurrency", 4, "parallele Studien")
	timeout := flag.Duration("timeout", 10*time.Minute, "Gesamtlaufzeit")
	flag.Parse()

	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	enabled := []providers.Provider{
		providers.WithBreaker(europepmc.NewFetcher(cfg.EuropePMCBaseURL, logging), 5, logging),
	}
	if cfg.UnpaywallEmail != "" {
		enabled = append(enabled, providers.WithBreaker(unpaywall.NewFetcher(cfg.UnpaywallBaseURL, cfg.UnpaywallEmail, logging), 5, logging))
	} else {
		logging.Info("UNPAYWALL_EMAIL nicht gesetzt, Unpaywall wird übersprungen.")
	}

	cat := catalogue.Default()
	logging.Info("Starte Katalog-Prüfung", zap.Int("studies", cat.Len()), zap.Int("providers", len(enabled)))

	verifier := services.NewCatalogueVerifier(logging, *concurrency, enabled...)
	findings, err := verifier.Verify(ctx, cat.All())
	if err != nil {
		logging.Fatal("Katalog-Prüfung abgebrochen", zap.Error(err))
	}

	summary := services.SummarizeFindings(findings)
	if *onlyProblems {
		kept := findings[:0]
		for _, f := range findings {
			if f.Status != services.VerificationOK && f.Status != services.VerificationSkipped {
				kept = append(kept, f)
			}
		}
		findings = kept
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any{"summary": summary, "findings": findings}); err != nil {
		logging.Fatal("Ausgabe fehlgeschlagen", zap.Error(err))
	}

	logging.Info("Katalog-Prüfung abgeschlossen",
		zap.Int("ok", summary[services.VerificationOK]),
		zap.Int("mismatch", summary[services.VerificationMismatch]),
		zap.Int("not_found", summary[services.VerificationNotFound]),
		zap.Int("error", summary[services.VerificationError]),
	)
	if summary[services.VerificationMismatch] > 0 {
		cancel()
		_ = logging.Sync()
		os.Exit(1)
	}
}
