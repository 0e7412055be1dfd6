// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package status_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sbmueller/semver-taggr/mocks"
	"github.com/sbmueller/semver-taggr/pkg/git"
	"github.com/sbmueller/semver-taggr/pkg/status"
)

var _ = Describe("Checker", func() {
	var ctx context.Context
	var repo *mocks.Repo
	var checker status.Checker

	BeforeEach(func() {
		ctx = context.Background()
		repo = &mocks.Repo{}
		repo.CurrentBranchReturns("main", nil)
		repo.LatestVersionTagReturns("v1.2.3", nil)
		checker = status.NewChecker(repo)
	})

	Describe("GetStatus", func() {
		It("reports branch, latest tag and version", func() {
			st, err := checker.GetStatus(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Branch).To(Equal("main"))
			Expect(st.LatestTag).To(Equal("v1.2.3"))
			Expect(st.Major).To(Equal(uint64(1)))
			Expect(st.Minor).To(Equal(uint64(2)))
			Expect(st.Patch).To(Equal(uint64(3)))
			Expect(st.Untagged).To(BeFalse())
		})

		It("precomputes the next tag for every bump kind", func() {
			st, err := checker.GetStatus(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.NextMajor).To(Equal("v2.0.0"))
			Expect(st.NextMinor).To(Equal("v1.3.0"))
			Expect(st.NextPatch).To(Equal("v1.2.4"))
		})

		It("keeps prefix and suffix in the next tags", func() {
			repo.LatestVersionTagReturns("release-2.4.9-hotfix", nil)
			st, err := checker.GetStatus(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.NextMinor).To(Equal("release-2.5.0-hotfix"))
		})

		Context("without version tags", func() {
			BeforeEach(func() {
				repo.LatestVersionTagReturns("", git.ErrNoVersionTag)
			})

			It("reports untagged instead of failing", func() {
				st, err := checker.GetStatus(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(st.Untagged).To(BeTrue())
				Expect(st.Branch).To(Equal("main"))
				Expect(st.LatestTag).To(Equal(""))
			})
		})

		Context("when the branch lookup fails", func() {
			BeforeEach(func() {
				repo.CurrentBranchReturns("", errors.New("not a git repository"))
			})

			It("returns the error", func() {
				_, err := checker.GetStatus(ctx)
				Expect(err).To(HaveOccurred())
			})
		})

		Context("when the latest tag has no version triple", func() {
			BeforeEach(func() {
				repo.LatestVersionTagReturns("release", nil)
			})

			It("returns the error", func() {
				_, err := checker.GetStatus(ctx)
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
