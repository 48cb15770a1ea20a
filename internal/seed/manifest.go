// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

// Package seed loads and applies the identity bootstrap manifest: extra roles
// and initial administrative accounts.
package seed

import (
	"os"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// SupportedVersions is the manifest format range this build understands.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

// Manifest is the seed.yaml document.
type Manifest struct {
	Version  string    `json:"version" yaml:"version" jsonschema:"required,description=Manifest format version (semver)"`
	Roles    []Role    `json:"roles,omitempty" yaml:"roles,omitempty" jsonschema:"description=Roles created in addition to the built-in set"`
	Accounts []Account `json:"accounts,omitempty" yaml:"accounts,omitempty" jsonschema:"description=Accounts registered at bootstrap"`
}

// Role is an ad-hoc role definition.
type Role struct {
	Name        string `json:"name" yaml:"name" jsonschema:"required,minLength=1,maxLength=256"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Account is a bootstrap account. The password is never stored in the
// manifest; PasswordEnv names the environment variable holding it.
type Account struct {
	Email       string   `json:"email" yaml:"email" jsonschema:"required,format=email"`
	FirstName   string   `json:"first_name" yaml:"first_name" jsonschema:"required,minLength=1"`
	LastName    string   `json:"last_name" yaml:"last_name" jsonschema:"required,minLength=1"`
	BirthDate   string   `json:"birth_date" yaml:"birth_date" jsonschema:"required,description=Date of birth (YYYY-MM-DD)"`
	PasswordEnv string   `json:"password_env" yaml:"password_env" jsonschema:"required,pattern=^[A-Z_][A-Z0-9_]*$"`
	Roles       []string `json:"roles,omitempty" yaml:"roles,omitempty" jsonschema:"description=Roles granted after registration"`
}

// ParseManifest parses and validates manifest YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	if len(data) == 0 {
		return nil, oops.Code("SEED_EMPTY").Errorf("manifest data is empty")
	}

	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, oops.Code("SEED_INVALID_YAML").Wrap(err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator supplied
	if err != nil {
		return nil, oops.Code("SEED_READ_FAILED").With("path", path).Wrap(err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, oops.With("path", path).Wrap(err)
	}
	return m, nil
}

// Validate checks the constraints the schema cannot express.
func (m *Manifest) Validate() error {
	v, err := semver.StrictNewVersion(m.Version)
	if err != nil {
		return oops.Code("SEED_VERSION_INVALID").
			With("version", m.Version).
			Errorf("version %q is not a semantic version", m.Version)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return oops.Code("SEED_VERSION_INVALID").Wrap(err)
	}
	if !c.Check(v) {
		return oops.Code("SEED_VERSION_UNSUPPORTED").
			With("version", m.Version).
			With("supported", SupportedVersions).
			Errorf("manifest version %s is not supported (want %s)", m.Version, SupportedVersions)
	}

	roles := make(map[string]struct{}, len(m.Roles))
	for _, r := range m.Roles {
		key := strings.ToLower(strings.TrimSpace(r.Name))
		if _, dup := roles[key]; dup {
			return oops.Code("SEED_DUPLICATE_ROLE").With("role", r.Name).Errorf("role %q listed twice", r.Name)
		}
		roles[key] = struct{}{}
	}

	emails := make(map[string]struct{}, len(m.Accounts))
	for _, a := range m.Accounts {
		key := strings.ToLower(strings.TrimSpace(a.Email))
		if _, dup := emails[key]; dup {
			return oops.Code("SEED_DUPLICATE_ACCOUNT").With("email", a.Email).Errorf("account %q listed twice", a.Email)
		}
		emails[key] = struct{}{}
		if _, err := a.birthDate(); err != nil {
			return oops.Code("SEED_BIRTH_DATE_INVALID").
				With("email", a.Email).
				With("birth_date", a.BirthDate).
				Errorf("birth_date must be YYYY-MM-DD")
		}
	}
	return nil
}

func (a Account) birthDate() (time.Time, error) {
	//nolint:wrapcheck // wrapped by Validate
	return time.Parse(time.DateOnly, a.BirthDate)
}
