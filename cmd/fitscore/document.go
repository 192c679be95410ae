package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/apexfit/fitscore/internal/app"
	"github.com/apexfit/fitscore/internal/domain/model"
)

// loadAssessment reads one assessment document from a YAML file. The
// profile gender is normalized so free-form input ("female", "F") maps onto
// the recognized values.
func loadAssessment(path string) (model.Assessment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Assessment{}, fmt.Errorf("read assessment %s: %w", path, err)
	}

	var a model.Assessment
	if err := yaml.Unmarshal(raw, &a); err != nil {
		return model.Assessment{}, fmt.Errorf("parse assessment %s: %w", path, err)
	}

	a.Profile.Gender = model.ParseGender(string(a.Profile.Gender))
	if a.PushUpType == "" {
		a.PushUpType = model.PushUpStandard
	}
	return a, nil
}

// writeReport renders one evaluation report as JSON.
func writeReport(w io.Writer, report *app.Report, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}
