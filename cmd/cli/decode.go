package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deqr/pkg/blockimg"
	"deqr/pkg/i18n"
	"deqr/pkg/logging"
	"deqr/pkg/qrdecode"
	"deqr/pkg/scan"
)

// Stage diagnostics are part of the scripting contract: fixed English
// strings on stderr, one per failure mode, so callers can tell a broken
// extraction apart from an illegible image. They are deliberately not
// localized.
const (
	diagNoQR          = "No QR code found in input"
	diagConvertFailed = "Failed to convert QR to image"
	diagDecodeFailed  = "Failed to decode QR code"
)

type decodeOptions struct {
	border     bool
	moduleSize int
	quietZone  int
}

var decodeOpts decodeOptions

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: i18n.Resolve(i18n.MsgCmdDecodeShort),
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !runDecode(decodeOpts, args) {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().BoolVar(&decodeOpts.border, "border", false, i18n.Resolve(i18n.MsgCliFlagBorder))
	decodeCmd.Flags().IntVar(&decodeOpts.moduleSize, "module-size", blockimg.DefaultModuleSize, i18n.Resolve(i18n.MsgCliFlagModSize))
	decodeCmd.Flags().IntVar(&decodeOpts.quietZone, "quiet-zone", blockimg.DefaultQuietZone, i18n.Resolve(i18n.MsgCliFlagQuietZone))
}

// runDecode runs the full pipeline and reports whether it succeeded. Only
// the decoded payload touches stdout; every failure path emits exactly one
// diagnostic line on stderr.
func runDecode(opts decodeOptions, args []string) bool {
	// Constructing the reader up front is the decoder availability check;
	// nothing else should run if the collaborator cannot be built.
	decoder := qrdecode.NewReader()

	text, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
		return false
	}

	block := scan.Extract(text, scan.Options{IncludeBorder: opts.border})
	if block.Empty() {
		fmt.Fprintln(os.Stderr, diagNoQR)
		return false
	}
	logging.Infof("found QR rendering: %d rows", len(block))

	matrix, err := blockimg.FromBlock(block)
	if err != nil {
		logging.Debugf("reconstruction failed: %v", err)
		fmt.Fprintln(os.Stderr, diagConvertFailed)
		return false
	}
	img := matrix.Render(blockimg.RenderOptions{
		ModuleSize: opts.moduleSize,
		QuietZone:  opts.quietZone,
	})
	logging.Debugf("rendered %dx%d modules into %v", len(matrix[0]), len(matrix), img.Bounds().Size())

	payload, err := decoder.Decode(img)
	if err != nil {
		logging.Debugf("decode failed: %v", err)
		fmt.Fprintln(os.Stderr, diagDecodeFailed)
		return false
	}
	fmt.Println(payload)
	return true
}
