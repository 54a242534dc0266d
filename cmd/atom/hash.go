// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bassosimone/atom/digest"
	"github.com/bassosimone/atom/logging"
	"github.com/spf13/cobra"
)

func newHashCmd(root *rootOptions) *cobra.Command {
	var algo string
	cmd := &cobra.Command{
		Use:   "hash [text...]",
		Short: "Hash the arguments or the standard input",
		Long: `Hash the arguments joined by spaces or, without arguments, the
standard input. The algorithm is one of md5, sha1 and blake2b.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input io.Reader = cmd.InOrStdin()
			if len(args) > 0 {
				input = strings.NewReader(strings.Join(args, " "))
			}
			value, err := hashInput(algo, input)
			if err != nil {
				logging.LogErr(root.logger(), logging.LevelError, err, "hash: %s", algo)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "sha1", "hash algorithm: md5, sha1 or blake2b")
	return cmd
}

func hashInput(algo string, r io.Reader) (string, error) {
	switch strings.ToLower(algo) {
	case "md5":
		return hashReader(digest.NewMd5Generator(), r)
	case "sha1":
		return hashReader(digest.NewSha1Generator(), r)
	case "blake2b":
		return hashReader(digest.NewBlake2b256Generator(), r)
	default:
		return "", fmt.Errorf("unsupported hash algorithm: %q", algo)
	}
}

// hashReader feeds gen with the content of r and returns the hex digest.
func hashReader[H digest.Digest](gen digest.Generator[H], r io.Reader) (string, error) {
	gen.Reset()
	buf := make([]byte, 32<<10)
	for {
		count, err := r.Read(buf)
		gen.Update(buf[:count])
		if err == io.EOF {
			return gen.Finalize().String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}
