// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tagger_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sbmueller/semver-taggr/mocks"
	"github.com/sbmueller/semver-taggr/pkg/config"
	"github.com/sbmueller/semver-taggr/pkg/git"
	"github.com/sbmueller/semver-taggr/pkg/semver"
	"github.com/sbmueller/semver-taggr/pkg/tagger"
)

var _ = Describe("Tagger", func() {
	var ctx context.Context
	var repo *mocks.Repo
	var prompter *mocks.Prompter
	var cfg config.Config
	var opts tagger.Options
	var t tagger.Tagger

	BeforeEach(func() {
		ctx = context.Background()
		repo = &mocks.Repo{}
		prompter = &mocks.Prompter{}
		cfg = config.Defaults()
		opts = tagger.Options{}

		repo.CurrentBranchReturns("main", nil)
		repo.LatestVersionTagReturns("v1.2.3", nil)
		repo.TagExistsReturns(false, nil)
		repo.UserIdentityReturns(git.Identity{Name: "Jane Dev", Email: "jane@example.com"}, nil)
		prompter.SelectBumpKindReturns(semver.BumpKindPatch, nil)
		prompter.ConfirmReturns(true, nil)
	})

	JustBeforeEach(func() {
		t = tagger.NewTagger(repo, prompter, cfg)
	})

	Describe("Run", func() {
		It("creates the bumped annotated tag", func() {
			err := t.Run(ctx, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.CreateAnnotatedTagCallCount()).To(Equal(1))
			_, name, message := repo.CreateAnnotatedTagArgsForCall(0)
			Expect(name).To(Equal("v1.2.4"))
			Expect(message).To(Equal("Tag created by taggr"))
		})

		It("bumps minor when selected", func() {
			prompter.SelectBumpKindReturns(semver.BumpKindMinor, nil)
			err := t.Run(ctx, opts)
			Expect(err).NotTo(HaveOccurred())
			_, name, _ := repo.CreateAnnotatedTagArgsForCall(0)
			Expect(name).To(Equal("v1.3.0"))
		})

		It("bumps major when selected", func() {
			prompter.SelectBumpKindReturns(semver.BumpKindMajor, nil)
			err := t.Run(ctx, opts)
			Expect(err).NotTo(HaveOccurred())
			_, name, _ := repo.CreateAnnotatedTagArgsForCall(0)
			Expect(name).To(Equal("v2.0.0"))
		})

		It("preserves prefix and suffix in the new tag", func() {
			repo.LatestVersionTagReturns("release-0.0.1", nil)
			err := t.Run(ctx, opts)
			Expect(err).NotTo(HaveOccurred())
			_, name, _ := repo.CreateAnnotatedTagArgsForCall(0)
			Expect(name).To(Equal("release-0.0.2"))
		})

		It("confirms with the new tag name", func() {
			err := t.Run(ctx, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(prompter.ConfirmCallCount()).To(Equal(1))
			_, question, defaultYes := prompter.ConfirmArgsForCall(0)
			Expect(question).To(ContainSubstring("v1.2.4"))
			Expect(defaultYes).To(BeTrue())
		})

		Context("with a preselected bump kind", func() {
			BeforeEach(func() {
				opts.BumpKind = semver.BumpKindMinor
			})

			It("does not prompt for a bump kind", func() {
				err := t.Run(ctx, opts)
				Expect(err).NotTo(HaveOccurred())
				Expect(prompter.SelectBumpKindCallCount()).To(Equal(0))
				_, name, _ := repo.CreateAnnotatedTagArgsForCall(0)
				Expect(name).To(Equal("v1.3.0"))
			})
		})

		Context("when the branch is not allowed", func() {
			BeforeEach(func() {
				repo.CurrentBranchReturns("feature/foo", nil)
			})

			It("fails before touching the repository", func() {
				err := t.Run(ctx, opts)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("not allowed for tagging"))
				Expect(repo.LatestVersionTagCallCount()).To(Equal(0))
				Expect(repo.CreateAnnotatedTagCallCount()).To(Equal(0))
			})

			It("proceeds with force", func() {
				opts.Force = true
				err := t.Run(ctx, opts)
				Expect(err).NotTo(HaveOccurred())
				Expect(repo.CurrentBranchCallCount()).To(Equal(0))
				Expect(repo.CreateAnnotatedTagCallCount()).To(Equal(1))
			})
		})

		Context("when no version tag exists", func() {
			BeforeEach(func() {
				repo.LatestVersionTagReturns("", git.ErrNoVersionTag)
			})

			It("aborts without creating anything", func() {
				err := t.Run(ctx, opts)
				Expect(errors.Is(err, git.ErrNoVersionTag)).To(BeTrue())
				Expect(prompter.SelectBumpKindCallCount()).To(Equal(0))
				Expect(repo.CreateAnnotatedTagCallCount()).To(Equal(0))
			})
		})

		Context("when the latest tag has no version triple", func() {
			BeforeEach(func() {
				repo.LatestVersionTagReturns("release", nil)
			})

			It("aborts without creating anything", func() {
				err := t.Run(ctx, opts)
				Expect(errors.Is(err, semver.ErrNoVersionInTag)).To(BeTrue())
				Expect(repo.CreateAnnotatedTagCallCount()).To(Equal(0))
			})
		})

		Context("when the bump selection fails", func() {
			BeforeEach(func() {
				prompter.SelectBumpKindReturns("", semver.ErrInvalidBumpKind)
			})

			It("aborts without creating anything", func() {
				err := t.Run(ctx, opts)
				Expect(errors.Is(err, semver.ErrInvalidBumpKind)).To(BeTrue())
				Expect(repo.CreateAnnotatedTagCallCount()).To(Equal(0))
			})
		})

		Context("when the new tag already exists", func() {
			BeforeEach(func() {
				repo.TagExistsReturns(true, nil)
			})

			It("aborts without creating anything", func() {
				err := t.Run(ctx, opts)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("already exists"))
				Expect(repo.CreateAnnotatedTagCallCount()).To(Equal(0))
			})
		})

		Context("when the user declines", func() {
			BeforeEach(func() {
				prompter.ConfirmReturns(false, nil)
			})

			It("returns nil and creates nothing", func() {
				err := t.Run(ctx, opts)
				Expect(err).NotTo(HaveOccurred())
				Expect(repo.CreateAnnotatedTagCallCount()).To(Equal(0))
			})
		})

		Context("with skip-confirm", func() {
			BeforeEach(func() {
				opts.SkipConfirm = true
			})

			It("creates the tag without prompting", func() {
				err := t.Run(ctx, opts)
				Expect(err).NotTo(HaveOccurred())
				Expect(prompter.ConfirmCallCount()).To(Equal(0))
				Expect(repo.CreateAnnotatedTagCallCount()).To(Equal(1))
			})
		})

		Context("with dry-run", func() {
			BeforeEach(func() {
				opts.DryRun = true
			})

			It("creates nothing", func() {
				err := t.Run(ctx, opts)
				Expect(err).NotTo(HaveOccurred())
				Expect(repo.CreateAnnotatedTagCallCount()).To(Equal(0))
				Expect(repo.UserIdentityCallCount()).To(Equal(0))
			})
		})

		Context("when the user identity is missing", func() {
			BeforeEach(func() {
				repo.UserIdentityReturns(git.Identity{}, errors.New("user.name is not set"))
			})

			It("aborts without creating anything", func() {
				err := t.Run(ctx, opts)
				Expect(err).To(HaveOccurred())
				Expect(repo.CreateAnnotatedTagCallCount()).To(Equal(0))
			})
		})

		Context("when tag creation fails", func() {
			BeforeEach(func() {
				repo.CreateAnnotatedTagReturns(errors.New("tag failed"))
			})

			It("returns the error", func() {
				err := t.Run(ctx, opts)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("tag failed"))
			})
		})

		Context("with a custom tag message", func() {
			BeforeEach(func() {
				cfg.TagMessage = "release tag"
			})

			It("passes the message through", func() {
				err := t.Run(ctx, opts)
				Expect(err).NotTo(HaveOccurred())
				_, _, message := repo.CreateAnnotatedTagArgsForCall(0)
				Expect(message).To(Equal("release tag"))
			})
		})
	})
})
