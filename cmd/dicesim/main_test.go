package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dicesim/internal/engine"
	"dicesim/internal/logging"
	"dicesim/internal/scenario"
)

const duel = `
title: Duel
options: {simulations: 2000, seed: 5}
models:
  raider: {dice: 4, stat: 5, rerolls: 1}
  guard: {dice: 3, stat: 4, armor: 1, shieldDice: 1}
matchups:
  - name: first
    attacker: raider
    defender: guard
  - name: again
    attacker: raider
    defender: guard
  - attacker: guard
    defender: raider
    rounds: 2
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "duel.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write scenario: %v", err)
	}
	return path
}

func TestRun_TextAndPDF(t *testing.T) {
	path := writeScenario(t, duel)
	pdfPath := filepath.Join(t.TempDir(), "out.pdf")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-scenario", path, "-pdf", pdfPath, "-log-level", "debug"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"first (raider vs guard", "again (raider vs guard", "matchup 3 (guard vs raider, 2 rounds)"} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q", want)
		}
	}
	if !strings.Contains(stderr.String(), "cache hit") {
		t.Errorf("expected a cache hit for the repeated matchup:\n%s", stderr.String())
	}

	b, err := os.ReadFile(pdfPath)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Error("report is not a PDF")
	}
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), nil, &stdout, &stderr); err == nil {
		t.Error("expected error without -scenario")
	}
	if err := run(context.Background(), []string{"-scenario", "missing.yaml"}, &stdout, &stderr); err == nil {
		t.Error("expected error for missing file")
	}

	bad := writeScenario(t, "models: {a: {dice: 1, stat: 0}}\nmatchups: [{attacker: a, defender: a}]\n")
	if err := run(context.Background(), []string{"-scenario", bad}, &stdout, &stderr); err == nil {
		t.Error("expected validation error for stat 0")
	}
}

func TestCalculate_RepeatedMatchupsShareResult(t *testing.T) {
	sc, err := scenario.Parse([]byte(duel))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	log := logging.New(&bytes.Buffer{}, "info", true)

	results, err := calculate(context.Background(), log, sc, engine.DefaultOptions())
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for k, p := range results[0].Dist {
		if results[1].Dist[k] != p {
			t.Fatalf("repeated seeded matchup differs at %d", k)
		}
	}
	if results[2].Options.NumRounds != 2 || results[0].Options.NumSimulations != 2000 {
		t.Errorf("unexpected options %+v / %+v", results[0].Options, results[2].Options)
	}
}
