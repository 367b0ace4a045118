package analysis

import (
	"errors"
	"testing"
	"time"

	"shuttercheck/internal/record"
)

func sequencePhoto(name string, minute int, primary int64) record.Photo {
	return record.Photo{
		Filename:    name,
		CaptureTime: time.Date(2021, time.May, 1, 10, minute, 0, 0, time.UTC),
		Primary:     record.Counter{Value: primary, Key: "ShutterCount", Present: true},
		ScanOrder:   minute,
	}
}

func TestDetectSingleSmallDecrease(t *testing.T) {
	photos := []record.Photo{
		sequencePhoto("a.jpg", 0, 100),
		sequencePhoto("b.jpg", 1, 250),
		sequencePhoto("c.jpg", 2, 80),
		sequencePhoto("d.jpg", 3, 400),
	}

	findings, err := Detect(photos, DefaultThresholds())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected exactly one finding, got %d: %+v", len(findings), findings)
	}
	f := findings[0]
	if f.Code != CodeSimpleDecrease {
		t.Fatalf("a 170-unit drop is below slack; expected %s, got %s", CodeSimpleDecrease, f.Code)
	}
	if f.PrevFile != "b.jpg" || f.File != "c.jpg" {
		t.Fatalf("finding ties the wrong pair: %+v", f)
	}
	if f.PrevValue != 250 || f.Value != 80 {
		t.Fatalf("unexpected values: %+v", f)
	}
	if f.Severity != SeverityNotice {
		t.Fatalf("simple decrease must report at notice severity, got %s", f.Severity)
	}
}

func TestDetectRegressionBeyondSlack(t *testing.T) {
	photos := []record.Photo{
		sequencePhoto("a.jpg", 0, 18230),
		sequencePhoto("b.jpg", 1, 3),
	}

	findings, err := Detect(photos, DefaultThresholds())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %d: %+v", len(findings), findings)
	}
	if findings[0].Code != CodePrimaryRegression {
		t.Fatalf("expected %s, got %s", CodePrimaryRegression, findings[0].Code)
	}
	if findings[0].Severity != SeverityWarning {
		t.Fatalf("threshold regressions are warnings, got %s", findings[0].Severity)
	}
}

func TestDetectDecreaseExactlyAtSlackIsNotice(t *testing.T) {
	photos := []record.Photo{
		sequencePhoto("a.jpg", 0, 2000),
		sequencePhoto("b.jpg", 1, 1000),
	}
	findings, err := Detect(photos, DefaultThresholds())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	// A decrease of exactly the slack is not "more than" the slack.
	if len(findings) != 1 || findings[0].Code != CodeSimpleDecrease {
		t.Fatalf("expected a single simple-decrease finding, got %+v", findings)
	}
}

func TestDetectSimpleDecreaseDisabled(t *testing.T) {
	photos := []record.Photo{
		sequencePhoto("a.jpg", 0, 250),
		sequencePhoto("b.jpg", 1, 80),
	}
	th := DefaultThresholds()
	th.SimpleDecrease = false
	findings, err := Detect(photos, th)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings with simple decrease disabled, got %+v", findings)
	}
}

func TestDetectLastValidSeenSkipsMissingCounters(t *testing.T) {
	gap := record.Photo{
		Filename:    "gap.jpg",
		CaptureTime: time.Date(2021, time.May, 1, 10, 1, 0, 0, time.UTC),
		ScanOrder:   1,
	}
	photos := []record.Photo{
		sequencePhoto("a.jpg", 0, 9000),
		gap,
		sequencePhoto("c.jpg", 2, 500),
	}

	findings, err := Detect(photos, DefaultThresholds())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected the gap to be bridged, got %+v", findings)
	}
	if findings[0].PrevFile != "a.jpg" || findings[0].File != "c.jpg" {
		t.Fatalf("regression should compare across the counter-less record: %+v", findings[0])
	}
}

func TestDetectImplausibleSecondary(t *testing.T) {
	base := record.Photo{
		Filename:    "a.jpg",
		CaptureTime: time.Date(2021, time.May, 1, 10, 0, 0, 0, time.UTC),
		Primary:     record.Counter{Value: 1000, Key: "ShutterCount", Present: true},
	}

	flagged := base
	flagged.Secondary = record.Counter{Value: 3000, Key: "ImageNumber", Present: true}
	findings, err := Detect([]record.Photo{flagged}, DefaultThresholds())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(findings) != 1 || findings[0].Code != CodeSecondaryImplausible {
		t.Fatalf("3000 > 1000*1.5+1000 must flag, got %+v", findings)
	}
	if findings[0].PrevFile != "" {
		t.Fatalf("intra-record finding must not reference a second file: %+v", findings[0])
	}

	clean := base
	clean.Secondary = record.Counter{Value: 2400, Key: "ImageNumber", Present: true}
	findings, err = Detect([]record.Photo{clean}, DefaultThresholds())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("2400 <= 2500 must not flag, got %+v", findings)
	}
}

func TestDetectRulesAreCumulative(t *testing.T) {
	first := sequencePhoto("a.jpg", 0, 20000)
	first.Secondary = record.Counter{Value: 9000, Key: "ImageNumber", Present: true}
	second := sequencePhoto("b.jpg", 1, 100)
	second.Secondary = record.Counter{Value: 120000, Key: "ImageNumber", Present: true}

	findings, err := Detect([]record.Photo{first, second}, DefaultThresholds())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	// b.jpg is implausible intra-record, and its primary regressed beyond
	// slack. The secondary increased, so no secondary findings.
	var codes []string
	for _, f := range findings {
		codes = append(codes, f.Code)
	}
	if len(findings) != 2 {
		t.Fatalf("expected two cumulative findings, got %v", codes)
	}
	if !containsCode(findings, CodeSecondaryImplausible) || !containsCode(findings, CodePrimaryRegression) {
		t.Fatalf("unexpected finding set: %v", codes)
	}
}

func TestDetectInsufficientData(t *testing.T) {
	photos := []record.Photo{
		{Filename: "a.jpg", Primary: record.Counter{Value: 100, Key: "ShutterCount", Present: true}},
		{Filename: "b.jpg"},
	}
	_, err := Detect(photos, DefaultThresholds())
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestDetectCleanSequenceReportsNoFindings(t *testing.T) {
	photos := []record.Photo{
		sequencePhoto("a.jpg", 0, 100),
		sequencePhoto("b.jpg", 1, 100),
		sequencePhoto("c.jpg", 2, 350),
	}
	findings, err := Detect(photos, DefaultThresholds())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("monotonically non-decreasing counters must be clean, got %+v", findings)
	}
}

func containsCode(findings []Finding, code string) bool {
	for _, f := range findings {
		if f.Code == code {
			return true
		}
	}
	return false
}
