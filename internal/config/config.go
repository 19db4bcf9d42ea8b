package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	MinPort = 1
	MaxPort = 65535
)

// DefaultPorts are checked when no ports are given.
var DefaultPorts = []int{3000, 4000, 4001}

var (
	// ErrInvalidPort is matched by every *PortError.
	ErrInvalidPort = errors.New("invalid port number")
	// ErrConflictingSources is returned when both CLI ports and a ports file are given.
	ErrConflictingSources = errors.New("ports given both as arguments and in a ports file")
)

// PortError describes one rejected port token.
type PortError struct {
	Value  string
	Reason string
}

func (e *PortError) Error() string {
	return fmt.Sprintf("invalid port %q: %s", e.Value, e.Reason)
}

func (e *PortError) Unwrap() error { return ErrInvalidPort }

// PortsFile is the YAML layout read by LoadPortsFile:
//
//	ports: [3000, 4000, 4001]
type PortsFile struct {
	Ports []int `yaml:"ports"`
}

// ParsePorts converts CLI arguments to ports, keeping their order and any
// duplicates. No arguments yields a copy of DefaultPorts.
func ParsePorts(args []string) ([]int, error) {
	if len(args) == 0 {
		return append([]int(nil), DefaultPorts...), nil
	}
	ports := make([]int, 0, len(args))
	for _, arg := range args {
		port, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, &PortError{Value: arg, Reason: "not an integer"}
		}
		if err := checkRange(port, arg); err != nil {
			return nil, err
		}
		ports = append(ports, port)
	}
	return ports, nil
}

func checkRange(port int, raw string) error {
	if port < MinPort || port > MaxPort {
		return &PortError{Value: raw, Reason: fmt.Sprintf("must be between %d and %d", MinPort, MaxPort)}
	}
	return nil
}

// LoadPortsFile reads the port list from a YAML file.
func LoadPortsFile(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ports file not found: %s", path)
	}

	var f PortsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(f.Ports) == 0 {
		return nil, fmt.Errorf("%s: no ports listed", path)
	}
	for _, port := range f.Ports {
		if err := checkRange(port, strconv.Itoa(port)); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return f.Ports, nil
}

// Resolve picks the ports to sweep: CLI args, else the ports file, else DefaultPorts.
func Resolve(args []string, file string) ([]int, error) {
	if file == "" {
		return ParsePorts(args)
	}
	if len(args) > 0 {
		return nil, ErrConflictingSources
	}
	return LoadPortsFile(file)
}
