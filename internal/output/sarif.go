package output

import (
	"encoding/json"
	"io"
	"path/filepath"

	"github.com/santosr2/ctidy/pkg/sdk"
)

// SARIFFormatter outputs findings in SARIF format for GitHub Code Scanning
type SARIFFormatter struct {
	Version string // ctidy version
}

// SARIF represents the root SARIF document
type SARIF struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single run of the tool
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool represents the tool information
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver represents the tool driver
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []SARIFRule `json:"rules,omitempty"`
}

// SARIFRule represents a rule definition
type SARIFRule struct {
	ID               string              `json:"id"`
	ShortDescription SARIFMessage        `json:"shortDescription"`
	Properties       SARIFRuleProperties `json:"properties,omitempty"`
}

// SARIFRuleProperties represents rule properties
type SARIFRuleProperties struct {
	Tags []string `json:"tags,omitempty"`
}

// SARIFMessage represents a message
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFResult represents a single result/finding
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
}

// SARIFLocation represents a location in the source
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation represents a physical location
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           SARIFRegion           `json:"region"`
}

// SARIFArtifactLocation represents an artifact location
type SARIFArtifactLocation struct {
	URI       string `json:"uri"`
	URIBaseID string `json:"uriBaseId,omitempty"`
}

// SARIFRegion represents a region in the source. Findings are line
// granular, so only the start line is populated.
type SARIFRegion struct {
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine,omitempty"`
}

// Format implements the Formatter interface for SARIF output
func (f *SARIFFormatter) Format(findings []sdk.Finding, w io.Writer) error {
	rules := buildSARIFRules(findings)
	results := buildSARIFResults(findings)
	sarif := f.buildSARIFDocument(rules, results)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(sarif)
}

func buildSARIFRules(findings []sdk.Finding) []SARIFRule {
	rulesMap := make(map[string]bool)
	for _, finding := range findings {
		rulesMap[finding.Rule] = true
	}

	var rules []SARIFRule
	for ruleID := range rulesMap {
		rules = append(rules, SARIFRule{
			ID: ruleID,
			ShortDescription: SARIFMessage{
				Text: ruleID,
			},
			Properties: SARIFRuleProperties{
				Tags: []string{"c", "style"},
			},
		})
	}
	return rules
}

func buildSARIFResults(findings []sdk.Finding) []SARIFResult {
	var results []SARIFResult
	for _, finding := range findings {
		results = append(results, SARIFResult{
			RuleID: finding.Rule,
			Level:  sarifLevel(finding.Severity),
			Message: SARIFMessage{
				Text: finding.Message,
			},
			Locations: []SARIFLocation{
				{
					PhysicalLocation: SARIFPhysicalLocation{
						ArtifactLocation: SARIFArtifactLocation{
							URI:       filepath.ToSlash(finding.File),
							URIBaseID: "%SRCROOT%",
						},
						Region: SARIFRegion{
							StartLine: finding.Line,
							EndLine:   finding.Line,
						},
					},
				},
			},
		})
	}
	return results
}

func (f *SARIFFormatter) buildSARIFDocument(rules []SARIFRule, results []SARIFResult) SARIF {
	return SARIF{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs: []SARIFRun{
			{
				Tool: SARIFTool{
					Driver: SARIFDriver{
						Name:           "ctidy",
						Version:        f.Version,
						InformationURI: "https://github.com/santosr2/ctidy",
						Rules:          rules,
					},
				},
				Results: results,
			},
		},
	}
}

// sarifLevel converts SDK severity to SARIF level
func sarifLevel(severity sdk.Severity) string {
	switch severity {
	case sdk.SeverityError:
		return "error"
	case sdk.SeverityWarning:
		return "warning"
	case sdk.SeverityInfo:
		return "note"
	default:
		return "warning"
	}
}
