package analysis

import (
	"errors"
	"fmt"

	"shuttercheck/internal/record"
)

// ErrInsufficientData reports a batch with zero dated, parseable records.
// It is a distinct outcome from an empty finding list: the latter means the
// data was examined and looked clean.
var ErrInsufficientData = errors.New("no records with a parseable capture time")

// Finding codes. The set is fixed; renderers key off these.
const (
	CodeSecondaryImplausible = "secondary-implausible"
	CodePrimaryRegression    = "primary-regression"
	CodeSecondaryRegression  = "secondary-regression"
	CodeSimpleDecrease       = "simple-decrease"
)

// Severity ranks findings for rendering. The simple-decrease rule fires at
// notice level; everything else is a warning.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityNotice  Severity = "notice"
)

// CounterClass names which counter a finding concerns.
type CounterClass string

const (
	ClassPrimary   CounterClass = "primary"
	ClassSecondary CounterClass = "secondary"
)

// Thresholds holds the anomaly heuristics. The values encode a judgment
// call about what counts as noise, so they are configuration, not
// constants.
type Thresholds struct {
	// RegressionSlack is the minimum decrease, in counter units, before a
	// regression is flagged by the threshold rules.
	RegressionSlack int64
	// SecondaryRatio and SecondaryOffset bound how far the secondary
	// counter may exceed the primary within one record: values above
	// primary*ratio+offset are implausible.
	SecondaryRatio  float64
	SecondaryOffset int64
	// SimpleDecrease enables the looser any-decrease rule, reported at
	// notice severity when no threshold rule fired for the same pair and
	// class.
	SimpleDecrease bool
}

// DefaultThresholds returns the stock heuristics.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RegressionSlack: 1000,
		SecondaryRatio:  1.5,
		SecondaryOffset: 1000,
		SimpleDecrease:  true,
	}
}

// Finding ties one record, or two adjacent-in-order records, to a reason
// code. PrevFile and the Prev* fields are empty for intra-record findings.
type Finding struct {
	Code     string       `json:"code"`
	Severity Severity     `json:"severity"`
	Class    CounterClass `json:"class"`

	File  string `json:"file"`
	Key   string `json:"key"`
	Value int64  `json:"value"`

	PrevFile  string `json:"prev_file,omitempty"`
	PrevKey   string `json:"prev_key,omitempty"`
	PrevValue int64  `json:"prev_value,omitempty"`

	Detail string `json:"detail"`
}

// Detect scans chronologically ordered records for counter irregularities.
// Rules are independent and cumulative; the scan covers the full sequence
// and never stops at the first hit. It returns ErrInsufficientData when no
// record carries a capture time.
func Detect(ordered []record.Photo, th Thresholds) ([]Finding, error) {
	if CountDated(ordered) == 0 {
		return nil, ErrInsufficientData
	}

	var findings []Finding
	for _, p := range ordered {
		if f, ok := implausibleSecondary(p, th); ok {
			findings = append(findings, f)
		}
	}

	findings = append(findings, scanRegressions(ordered, ClassPrimary, th)...)
	findings = append(findings, scanRegressions(ordered, ClassSecondary, th)...)
	return findings, nil
}

func implausibleSecondary(p record.Photo, th Thresholds) (Finding, bool) {
	if !p.Primary.Present || !p.Secondary.Present {
		return Finding{}, false
	}
	limit := float64(p.Primary.Value)*th.SecondaryRatio + float64(th.SecondaryOffset)
	if float64(p.Secondary.Value) <= limit {
		return Finding{}, false
	}
	return Finding{
		Code:     CodeSecondaryImplausible,
		Severity: SeverityWarning,
		Class:    ClassSecondary,
		File:     p.Filename,
		Key:      p.Secondary.Key,
		Value:    p.Secondary.Value,
		Detail: fmt.Sprintf("%s=%d is implausibly large against %s=%d",
			p.Secondary.Key, p.Secondary.Value, p.Primary.Key, p.Primary.Value),
	}, true
}

// scanRegressions walks the dated records carrying the last record that had
// a present counter of the given class, so gaps in counter coverage do not
// hide a regression between two valid readings.
func scanRegressions(ordered []record.Photo, class CounterClass, th Thresholds) []Finding {
	var findings []Finding
	var last *record.Photo

	for i := range ordered {
		p := &ordered[i]
		if !p.Dated() {
			continue
		}
		counter := counterFor(p, class)
		if !counter.Present {
			continue
		}
		if last != nil {
			prev := counterFor(last, class)
			decrease := prev.Value - counter.Value
			fired := false
			if decrease > th.RegressionSlack {
				findings = append(findings, regressionFinding(class, *last, *p, prev, counter, SeverityWarning, false))
				fired = true
			}
			if !fired && th.SimpleDecrease && decrease > 0 {
				findings = append(findings, regressionFinding(class, *last, *p, prev, counter, SeverityNotice, true))
			}
		}
		last = p
	}
	return findings
}

func regressionFinding(class CounterClass, prev, cur record.Photo, prevCounter, curCounter record.Counter, severity Severity, simple bool) Finding {
	code := CodePrimaryRegression
	if class == ClassSecondary {
		code = CodeSecondaryRegression
	}
	detail := fmt.Sprintf("%s counter decreased from %d (%s) to %d (%s), possible reset or component replacement",
		class, prevCounter.Value, prev.Filename, curCounter.Value, cur.Filename)
	if simple {
		code = CodeSimpleDecrease
		detail = fmt.Sprintf("%s counter decreased from %d (%s) to %d (%s)",
			class, prevCounter.Value, prev.Filename, curCounter.Value, cur.Filename)
	}
	return Finding{
		Code:      code,
		Severity:  severity,
		Class:     class,
		File:      cur.Filename,
		Key:       curCounter.Key,
		Value:     curCounter.Value,
		PrevFile:  prev.Filename,
		PrevKey:   prevCounter.Key,
		PrevValue: prevCounter.Value,
		Detail:    detail,
	}
}

func counterFor(p *record.Photo, class CounterClass) record.Counter {
	if class == ClassSecondary {
		return p.Secondary
	}
	return p.Primary
}
