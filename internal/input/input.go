// Package input collects the sensor packages handed to the tracker.
package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/and161185/fitness-tracker/model"
	"gopkg.in/yaml.v3"
)

var ErrInvalidArg = errors.New("invalid package argument")
var ErrUnsupportedFormat = errors.New("unsupported packages file format")

// DefaultPackages returns the sample readings used when no input is given.
func DefaultPackages() []model.Package {
	return []model.Package{
		{Code: model.Swimming, Data: []float64{720, 1, 80, 25, 40}},
		{Code: model.Running, Data: []float64{15000, 1, 75}},
		{Code: model.SportsWalking, Data: []float64{9000, 1, 75, 180}},
	}
}

// LoadFile reads packages from a JSON or YAML file, picked by extension.
func LoadFile(path string) ([]model.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading packages file: %w", err)
	}

	var pkgs []model.Package
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &pkgs)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &pkgs)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing packages file: %w", err)
	}

	return pkgs, nil
}

// ParseArgs parses arguments of the form CODE:v1,v2,... e.g. RUN:15000,1,75.
func ParseArgs(args []string) ([]model.Package, error) {
	pkgs := make([]model.Package, 0, len(args))
	for _, arg := range args {
		p, err := parseArg(arg)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, nil
}

func parseArg(arg string) (model.Package, error) {
	code, values, ok := strings.Cut(arg, ":")
	if !ok || code == "" {
		return model.Package{}, fmt.Errorf("%w %q: want CODE:v1,v2,...", ErrInvalidArg, arg)
	}

	var data []float64
	if values != "" {
		for _, s := range strings.Split(values, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return model.Package{}, fmt.Errorf("%w %q: %w", ErrInvalidArg, arg, err)
			}
			data = append(data, v)
		}
	}

	return model.Package{Code: model.WorkoutCode(code), Data: data}, nil
}

// Resolve picks the input source: arguments first, then the file, then the samples.
func Resolve(args []string, path string) ([]model.Package, error) {
	if len(args) > 0 {
		return ParseArgs(args)
	}
	if path != "" {
		return LoadFile(path)
	}
	return DefaultPackages(), nil
}
