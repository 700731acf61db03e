package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/palletpack/cli"
)

var _ = Describe("NewLogger", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	It("hides V(DEFAULT) at verbosity 0 but keeps errors", func() {
		logger := cli.NewLogger(zapcore.AddSync(buf), 0, false)
		logger.V(cli.DEFAULT).Info("hidden")
		logger.Error(errors.New("boom"), "visible")

		Expect(buf.String()).NotTo(ContainSubstring("hidden"))
		Expect(buf.String()).To(ContainSubstring("visible"))
		Expect(buf.String()).To(ContainSubstring("boom"))
	})

	It("writes structured JSON with key/value pairs", func() {
		logger := cli.NewLogger(zapcore.AddSync(buf), cli.DEFAULT, false)
		logger.WithValues("runID", "abc").V(cli.DEFAULT).Info("Solved", "profit", 220)

		var entry map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &entry)).To(Succeed())
		Expect(entry).To(HaveKeyWithValue("msg", "Solved"))
		Expect(entry).To(HaveKeyWithValue("runID", "abc"))
		Expect(entry).To(HaveKeyWithValue("profit", BeNumerically("==", 220)))
	})

	It("stops at the configured verbosity", func() {
		logger := cli.NewLogger(zapcore.AddSync(buf), cli.VERBOSE, true)
		logger.V(cli.VERBOSE).Info("dispatch")
		logger.V(cli.DEBUG).Info("details")

		Expect(buf.String()).To(ContainSubstring("dispatch"))
		Expect(buf.String()).NotTo(ContainSubstring("details"))
	})
})
