package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mdp/qrterminal/v3"
	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"deqr/pkg/blockimg"
	"deqr/pkg/i18n"
	"deqr/pkg/logging"
	"deqr/pkg/scan"
	"deqr/pkg/util"
)

type encodeOptions struct {
	mode    string
	inverse bool
	pngPath string
	pngSize int
}

var encodeOpts encodeOptions

var encodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: i18n.Resolve(i18n.MsgCmdEncodeShort),
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New(i18n.Resolve(i18n.MsgCliEncodeNoText))
		}
		return runEncode(encodeOpts, args[0])
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringVarP(&encodeOpts.mode, "qr-mode", "Q", "plain", i18n.Resolve(i18n.MsgCliFlagQRMode))
	encodeCmd.Flags().BoolVar(&encodeOpts.inverse, "inverse", false, i18n.Resolve(i18n.MsgCliFlagQRInverse))
	encodeCmd.Flags().StringVar(&encodeOpts.pngPath, "png", "", i18n.Resolve(i18n.MsgCliFlagPNG))
	encodeCmd.Flags().IntVar(&encodeOpts.pngSize, "size", 256, i18n.Resolve(i18n.MsgCliFlagPNGSize))
}

func runEncode(opts encodeOptions, text string) error {
	if opts.pngPath != "" {
		if err := writePNG(text, opts); err != nil {
			return err
		}
	}
	switch mode := strings.ToLower(opts.mode); mode {
	case "none":
		return nil
	case "ansi":
		qrterminal.GenerateHalfBlock(text, qrterminal.L, os.Stdout)
		return nil
	case "plain":
		return printHalfBlocks(text, opts.inverse)
	default:
		return errors.New(i18n.Msgf(i18n.MsgCliUnknownMode, opts.mode))
	}
}

// printHalfBlocks writes the framed half-block rendering: the QR module
// matrix packed two rows per line, between ▄-run marker lines, so the
// output feeds straight back into `deqr decode`. The decoder side re-adds
// the quiet zone, so the symbol is emitted without its own border.
func printHalfBlocks(text string, inverse bool) error {
	qr, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return errors.New(i18n.Msgf(i18n.MsgCliQRFail, err))
	}
	qr.DisableBorder = true
	m := blockimg.Matrix(qr.Bitmap())
	if inverse {
		for _, row := range m {
			for i := range row {
				row[i] = !row[i]
			}
		}
	}
	lines := m.HalfBlocks()
	if len(lines) == 0 {
		return errors.New(i18n.Msgf(i18n.MsgCliQRFail, blockimg.ErrEmptyBlock))
	}
	marker := strings.Repeat(string(scan.LowerHalf), len([]rune(lines[0])))
	fmt.Println(marker)
	for _, line := range lines {
		fmt.Println(line)
	}
	fmt.Println(marker)
	return nil
}

func writePNG(text string, opts encodeOptions) error {
	path, err := util.ExpandPath(opts.pngPath)
	if err != nil {
		return err
	}
	if err := util.MkDirWithPerm(path, 0o755); err != nil {
		return err
	}
	if util.FileExists(path) {
		logging.Warnf("overwriting %s", path)
	}
	if err := qrcode.WriteFile(text, qrcode.Medium, opts.pngSize, path); err != nil {
		return errors.New(i18n.Msgf(i18n.MsgCliQRFail, err))
	}
	writeInfo(i18n.Resolve(i18n.MsgCliPNGWritten), path)
	return nil
}
