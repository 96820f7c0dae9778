package cmd

import (
	"fmt"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	gutils "github.com/Laisky/shamir-audit"
	"github.com/Laisky/shamir-audit/crypto/threshold/shamir"
	"github.com/Laisky/shamir-audit/crypto/threshold/shamir/sharefile"
	"github.com/Laisky/shamir-audit/log"
)

var fingerprintArg struct {
	Files []string
}

func init() {
	rootCmd.AddCommand(fingerprintCMD)
	fingerprintCMD.Flags().StringSliceVarP(&fingerprintArg.Files,
		"file", "i", nil, "share files")
}

// fingerprintCMD print fingerprints of share files
var fingerprintCMD = &cobra.Command{
	Use:   "fingerprint",
	Short: "print fingerprints of share files",
	Long: gutils.Dedent(`
		Print the share set fingerprint and the file hash of share files.

		Two files with the same share set fingerprint hold the same shares
		in the same order, even if they are formatted differently.

			shamir-audit fingerprint -i a.json,b.json
	`),
	Args: NoExtraArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if len(fingerprintArg.Files) == 0 {
			return errors.Errorf("--file should not be empty")
		}

		for _, fpath := range fingerprintArg.Files {
			line, err := fingerprintLine(fpath)
			if err != nil {
				return errors.Wrapf(err, "fingerprint %q", fpath)
			}

			if _, err = fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
				return errors.Wrap(err, "write output")
			}
		}

		return nil
	},
}

// fingerprintLine `<share set fingerprint>  <file hash>  <shares>  <path>`
func fingerprintLine(fpath string) (string, error) {
	fileHash, err := gutils.FileXXHash(fpath)
	if err != nil {
		return "", err
	}

	doc, err := sharefile.Load(fpath)
	if err != nil {
		return "", err
	}

	set, err := shamir.NewShareSet(doc.Shares...)
	if err != nil {
		return "", errors.Wrap(err, "validate shares")
	}

	log.Shared.Debug("fingerprint share file",
		zap.String("file", fpath),
		zap.Int("shares", set.Len()))
	return fmt.Sprintf("%016x  %016x  %d  %s",
		set.Fingerprint(), fileHash, set.Len(), fpath), nil
}
