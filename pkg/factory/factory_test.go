// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sbmueller/semver-taggr/pkg/config"
	"github.com/sbmueller/semver-taggr/pkg/factory"
)

var _ = Describe("Factory", func() {
	var ctx context.Context
	var tmpDir string
	var f *factory.Factory

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		tmpDir, err = os.MkdirTemp("", "factory-test-*")
		Expect(err).NotTo(HaveOccurred())

		f = factory.New(tmpDir, ".taggr.yaml")
	})

	AfterEach(func() {
		_ = os.RemoveAll(tmpDir)
	})

	Describe("Config", func() {
		It("returns defaults without a config file", func() {
			cfg, err := f.Config(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(config.Defaults()))
		})

		It("resolves a relative config path against the work dir", func() {
			err := os.WriteFile(
				filepath.Join(tmpDir, ".taggr.yaml"),
				[]byte("tagMessage: custom message\n"),
				0600,
			)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := f.Config(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.TagMessage).To(Equal("custom message"))
		})
	})

	Describe("Repo", func() {
		It("returns a non-nil repo", func() {
			Expect(f.Repo(config.Defaults())).NotTo(BeNil())
		})
	})

	Describe("Tagger", func() {
		It("returns a non-nil tagger", func() {
			Expect(f.Tagger(config.Defaults())).NotTo(BeNil())
		})
	})

	Describe("StatusChecker", func() {
		It("returns a non-nil checker", func() {
			Expect(f.StatusChecker(config.Defaults())).NotTo(BeNil())
		})
	})
})
