package glyph_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGlyph(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Glyph Suite")
}
