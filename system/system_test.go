// SPDX-License-Identifier: MIT
package system_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lusolve/lu"
	"github.com/katalvlaran/lusolve/system"
)

const magic3YAML = `name: magic3
a:
  - [8, 1, 6]
  - [3, 5, 7]
  - [4, 9, 2]
b: [1, 2, 3]
`

var _ = Describe("Decode", func() {
	It("should parse a well-formed system", func() {
		s, err := system.Decode(strings.NewReader(magic3YAML))
		Expect(err).To(Succeed())
		Expect(s.Name).To(Equal("magic3"))
		Expect(s.A).To(Equal(system.Demo().A))
		Expect(s.B).To(Equal([]float64{1, 2, 3}))
	})

	It("should reject unknown keys", func() {
		_, err := system.Decode(strings.NewReader(magic3YAML + "c: 1\n"))
		Expect(err).To(HaveOccurred())
	})

	DescribeTable("should reject malformed shapes",
		func(doc string) {
			_, err := system.Decode(strings.NewReader(doc))
			Expect(err).To(MatchError(system.ErrInvalidSystem))
		},
		Entry("empty a", "name: x\na: []\nb: []\n"),
		Entry("non-square", "a:\n  - [1, 2]\nb: [1]\n"),
		Entry("ragged", "a:\n  - [1, 2]\n  - [3]\nb: [1, 2]\n"),
		Entry("short b", "a:\n  - [1, 0]\n  - [0, 1]\nb: [1]\n"),
	)
})

var _ = Describe("Load and Save", func() {
	It("should round-trip the demo system through disk", func() {
		path := filepath.Join(GinkgoT().TempDir(), "demo.yaml")
		Expect(system.Save(path, system.Demo())).To(Succeed())

		s, err := system.Load(path)
		Expect(err).To(Succeed())
		Expect(s).To(Equal(system.Demo()))
	})

	It("should name the file when the document is invalid", func() {
		path := filepath.Join(GinkgoT().TempDir(), "bad.yaml")
		Expect(os.WriteFile(path, []byte("a:\n  - [1, 2]\nb: [1]\n"), 0644)).To(Succeed())

		_, err := system.Load(path)
		Expect(err).To(MatchError(system.ErrInvalidSystem))
		Expect(err.Error()).To(ContainSubstring("bad.yaml"))
	})

	It("should fail for a missing file", func() {
		_, err := system.Load(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
		Expect(err).To(MatchError(os.ErrNotExist))
	})
})

var _ = Describe("Solve", func() {
	It("should solve the demo system", func() {
		r, err := system.Demo().Solve()
		Expect(err).To(Succeed())
		Expect(r.Name).To(Equal("magic3"))
		Expect(r.X).To(HaveLen(3))
		Expect(r.X[0]).To(BeNumerically("~", 0.05, 1e-12))
		Expect(r.X[1]).To(BeNumerically("~", 0.3, 1e-12))
		Expect(r.X[2]).To(BeNumerically("~", 0.05, 1e-12))
		Expect(r.Pivots).To(Equal([]int{0, 2, 1}))
		Expect(r.Det).To(BeNumerically("~", -360, 1e-9))
		Expect(r.Residual).To(BeNumerically("<", 1e-12))
	})

	It("should give the same answer with parallel elimination", func() {
		seq, err := system.Demo().Solve()
		Expect(err).To(Succeed())
		par, err := system.Demo().Solve(lu.WithWorkers(4), lu.WithParallelThreshold(0))
		Expect(err).To(Succeed())
		Expect(par).To(Equal(seq))
	})

	It("should measure the residual against A when factorizing in place", func() {
		want, err := system.Demo().Solve()
		Expect(err).To(Succeed())
		r, err := system.Demo().Solve(lu.WithInPlace())
		Expect(err).To(Succeed())
		Expect(r.Residual).To(BeNumerically("<", 1e-12))
		Expect(r).To(Equal(want))
	})

	It("should report singular systems", func() {
		s := &system.System{Name: "flat", A: [][]float64{{0, 1}, {0, 1}}, B: []float64{1, 1}}
		_, err := s.Solve()
		Expect(err).To(MatchError(lu.ErrSingular))
		Expect(err.Error()).To(ContainSubstring(`solve "flat"`))
	})

	It("should expose the factorization", func() {
		f, err := system.Demo().Factorize()
		Expect(err).To(Succeed())
		Expect(f.Pivots()).To(Equal(lu.Permutation{0, 2, 1}))
	})
})

var _ = Describe("WriteReport", func() {
	It("should render a YAML document", func() {
		var buf bytes.Buffer
		r := &system.Report{Name: "unit", X: []float64{1, 2}, Residual: 0, Pivots: []int{1, 0}, Det: -2}
		Expect(system.WriteReport(&buf, r)).To(Succeed())
		Expect(buf.String()).To(HavePrefix("name: unit\n"))

		var back system.Report
		Expect(yaml.Unmarshal(buf.Bytes(), &back)).To(Succeed())
		Expect(&back).To(Equal(r))
	})
})
