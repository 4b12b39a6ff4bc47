/*
main.go - One-shot quote CLI

PURPOSE:
  Computes a single quote from a YAML scenario file and prints the
  proposal document (or the raw JSON report) to stdout. Useful for
  checking rule revisions without standing up the HTTP server.

SCENARIO FILE:
  customer: 홍길동
  is_minor_cancer: false
  rule_generation: table
  coverages:
    samsung:
      암직접치료보장: 1000
      암주요치료보장: 1000
    kb:
      비급여 암 주요치료비II: 500
  years:
    - year: 1
      events: [수술]
    - year: 2
      events: [방사선, 항암약물]

FLAGS:
  -f       Scenario file path (required)
  -rules   Optional rule-set override files, comma-separated
  -json    Print the JSON report instead of the proposal text
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oncare/coverage-engine/factory"
	"github.com/oncare/coverage-engine/payout"
	"github.com/oncare/coverage-engine/proposal"
	"github.com/oncare/coverage-engine/quote"
)

// scenarioFile is the YAML shape of one quote request.
type scenarioFile struct {
	Customer       string                      `yaml:"customer"`
	IsMinorCancer  bool                        `yaml:"is_minor_cancer"`
	RuleGeneration string                      `yaml:"rule_generation"`
	Coverages      map[string]map[string]int64 `yaml:"coverages"`
	Years          []struct {
		Year   int      `yaml:"year"`
		Events []string `yaml:"events"`
	} `yaml:"years"`
}

func main() {
	file := flag.String("f", "", "scenario file (YAML)")
	rulesFlag := flag.String("rules", "", "comma-separated rule-set files overriding built-in tables")
	asJSON := flag.Bool("json", false, "print the JSON report instead of the proposal text")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read scenario: %v", err)
	}
	var sf scenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		log.Fatalf("Failed to parse scenario: %v", err)
	}

	ruleSets := factory.Defaults()
	if *rulesFlag != "" {
		for _, path := range strings.Split(*rulesFlag, ",") {
			path = strings.TrimSpace(path)
			if path == "" {
				continue
			}
			rs, err := factory.LoadFile(path)
			if err != nil {
				log.Fatalf("Failed to load rule set %s: %v", path, err)
			}
			ruleSets[rs.Catalog.Insurer()] = rs
		}
	}

	req := toRequest(sf)
	res, err := quote.Compute(req, ruleSets)
	if err != nil {
		log.Fatalf("Failed to compute quote: %v", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Report); err != nil {
			log.Fatalf("Failed to encode report: %v", err)
		}
		return
	}

	fmt.Print(proposal.Render(req, res, ruleSets))
}

func toRequest(sf scenarioFile) quote.Request {
	req := quote.Request{
		Customer:    sf.Customer,
		MinorCancer: sf.IsMinorCancer,
		Generation:  quote.Generation(sf.RuleGeneration),
		Coverages:   make(map[payout.Insurer]map[payout.ClauseName]payout.ManWon, len(sf.Coverages)),
	}
	for insurer, amounts := range sf.Coverages {
		m := make(map[payout.ClauseName]payout.ManWon, len(amounts))
		for name, amt := range amounts {
			m[payout.ClauseName(name)] = payout.ManWon(amt)
		}
		req.Coverages[payout.Insurer(insurer)] = m
	}
	for _, y := range sf.Years {
		events := make([]payout.EventTag, len(y.Events))
		for i, ev := range y.Events {
			events[i] = payout.EventTag(ev)
		}
		req.Years = append(req.Years, payout.YearEvents{Year: y.Year, Events: events})
	}
	return req
}
