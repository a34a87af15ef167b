package compiler

import (
	"context"
	"fmt"

	"github.com/World-Enterprise-Collision/MellowD/internal/ctxlog"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// optionsFile is the schema of an options file:
//
//	title = "Prelude"
//	tempo = 96
//	ppqn  = 480
//	time_signature {
//	  numerator   = 3
//	  denominator = 4
//	}
type optionsFile struct {
	Title         string              `hcl:"title,optional"`
	Tempo         int                 `hcl:"tempo,optional"`
	PPQN          int                 `hcl:"ppqn,optional"`
	Silent        bool                `hcl:"silent,optional"`
	TimeSignature *timeSignatureBlock `hcl:"time_signature,block"`
}

type timeSignatureBlock struct {
	Numerator   int `hcl:"numerator"`
	Denominator int `hcl:"denominator"`
}

// LoadOptions reads an HCL options file. Settings the file leaves out keep
// their DefaultOptions value.
func LoadOptions(ctx context.Context, path string) (Options, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading compiler options.", "path", path)

	opts := DefaultOptions()
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return opts, fmt.Errorf("failed to parse options file %s: %w", path, diags)
	}

	raw := optionsFile{
		Title:  opts.Title,
		Tempo:  opts.Tempo,
		PPQN:   opts.PPQN,
		Silent: opts.Silent,
	}
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return opts, fmt.Errorf("failed to decode options file %s: %w", path, diags)
	}

	opts.Title = raw.Title
	opts.Tempo = raw.Tempo
	opts.PPQN = raw.PPQN
	opts.Silent = raw.Silent
	if raw.TimeSignature != nil {
		opts.Numerator = raw.TimeSignature.Numerator
		opts.Denominator = raw.TimeSignature.Denominator
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid options file %s: %w", path, err)
	}

	logger.Debug("Compiler options loaded.", "tempo", opts.Tempo, "numerator", opts.Numerator, "denominator", opts.Denominator, "ppqn", opts.PPQN)
	return opts, nil
}
