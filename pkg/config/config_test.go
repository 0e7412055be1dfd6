// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sbmueller/semver-taggr/pkg/config"
)

var _ = Describe("Config", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Defaults", func() {
		It("returns config with default values", func() {
			cfg := config.Defaults()
			Expect(cfg.TagPolicy).To(Equal(config.PolicyDescribe))
			Expect(cfg.AllowedBranches).To(Equal([]string{"master", "main"}))
			Expect(cfg.TagMessage).To(Equal("Tag created by taggr"))
		})
	})

	Describe("Validate", func() {
		It("succeeds for valid config", func() {
			cfg := config.Config{
				TagPolicy:       config.PolicyDescribe,
				AllowedBranches: []string{"main"},
				TagMessage:      "Tag created by taggr",
			}
			err := cfg.Validate(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("fails for invalid tagPolicy", func() {
			cfg := config.Config{
				TagPolicy:       "invalid",
				AllowedBranches: []string{"main"},
				TagMessage:      "Tag created by taggr",
			}
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("tagPolicy"))
		})

		It("fails for empty allowedBranches", func() {
			cfg := config.Config{
				TagPolicy:       config.PolicyDescribe,
				AllowedBranches: []string{},
				TagMessage:      "Tag created by taggr",
			}
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("allowedBranches"))
		})

		It("fails for empty branch name", func() {
			cfg := config.Config{
				TagPolicy:       config.PolicyDescribe,
				AllowedBranches: []string{"main", ""},
				TagMessage:      "Tag created by taggr",
			}
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("allowedBranches"))
		})

		It("fails for empty tagMessage", func() {
			cfg := config.Config{
				TagPolicy:       config.PolicyDescribe,
				AllowedBranches: []string{"main"},
				TagMessage:      "",
			}
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("tagMessage"))
		})
	})

	Describe("AllowsBranch", func() {
		var cfg config.Config

		BeforeEach(func() {
			cfg = config.Defaults()
		})

		It("allows master", func() {
			Expect(cfg.AllowsBranch("master")).To(BeTrue())
		})

		It("allows main", func() {
			Expect(cfg.AllowsBranch("main")).To(BeTrue())
		})

		It("rejects feature branches", func() {
			Expect(cfg.AllowsBranch("feature/foo")).To(BeFalse())
		})
	})

	Describe("Policy", func() {
		Describe("Validate", func() {
			It("succeeds for describe policy", func() {
				err := config.PolicyDescribe.Validate(ctx)
				Expect(err).NotTo(HaveOccurred())
			})

			It("succeeds for all policy", func() {
				err := config.PolicyAll.Validate(ctx)
				Expect(err).NotTo(HaveOccurred())
			})

			It("fails for unknown policy", func() {
				err := config.Policy("latest").Validate(ctx)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("unknown tag policy"))
			})
		})
	})

	Describe("Loader", func() {
		var tmpDir string
		var configPath string
		var loader config.Loader

		BeforeEach(func() {
			var err error
			tmpDir, err = os.MkdirTemp("", "config-test-*")
			Expect(err).NotTo(HaveOccurred())

			configPath = filepath.Join(tmpDir, ".taggr.yaml")
			loader = config.NewLoader(configPath)
		})

		AfterEach(func() {
			err := os.RemoveAll(tmpDir)
			Expect(err).NotTo(HaveOccurred())
		})

		Describe("Load", func() {
			It("returns defaults when config file does not exist", func() {
				cfg, err := loader.Load(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg).To(Equal(config.Defaults()))
			})

			It("loads full config from file", func() {
				configContent := `tagPolicy: all
allowedBranches:
  - trunk
  - release
tagMessage: release tag
`
				err := os.WriteFile(configPath, []byte(configContent), 0600)
				Expect(err).NotTo(HaveOccurred())

				cfg, err := loader.Load(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.TagPolicy).To(Equal(config.PolicyAll))
				Expect(cfg.AllowedBranches).To(Equal([]string{"trunk", "release"}))
				Expect(cfg.TagMessage).To(Equal("release tag"))
			})

			It("merges partial config with defaults", func() {
				configContent := `tagPolicy: all
`
				err := os.WriteFile(configPath, []byte(configContent), 0600)
				Expect(err).NotTo(HaveOccurred())

				cfg, err := loader.Load(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.TagPolicy).To(Equal(config.PolicyAll))
				Expect(cfg.AllowedBranches).To(Equal([]string{"master", "main"}))
				Expect(cfg.TagMessage).To(Equal("Tag created by taggr"))
			})

			It("returns error for invalid YAML", func() {
				configContent := `tagPolicy: all
invalid yaml: [unclosed
`
				err := os.WriteFile(configPath, []byte(configContent), 0600)
				Expect(err).NotTo(HaveOccurred())

				_, err = loader.Load(ctx)
				Expect(err).To(HaveOccurred())
			})

			It("returns error for invalid tagPolicy value", func() {
				configContent := `tagPolicy: latest
`
				err := os.WriteFile(configPath, []byte(configContent), 0600)
				Expect(err).NotTo(HaveOccurred())

				_, err = loader.Load(ctx)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("tagPolicy"))
			})

			It("returns error for explicitly empty allowedBranches", func() {
				configContent := `allowedBranches: []
`
				err := os.WriteFile(configPath, []byte(configContent), 0600)
				Expect(err).NotTo(HaveOccurred())

				_, err = loader.Load(ctx)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("allowedBranches"))
			})
		})
	})
})
