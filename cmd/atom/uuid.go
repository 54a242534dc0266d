// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"errors"
	"fmt"

	"github.com/bassosimone/atom/logging"
	"github.com/bassosimone/atom/uuids"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// errMissingName indicates that a name-based UUID was requested without a name.
var errMissingName = errors.New("name-based UUIDs require a name")

func newUUIDCmd(root *rootOptions) *cobra.Command {
	var (
		version   int
		namespace string
	)
	cmd := &cobra.Command{
		Use:   "uuid [name]",
		Short: "Generate a UUID",
		Long: `Generate a UUID of the given version.

Versions 3 and 5 hash the name within the namespace, which is either
one of dns, url, oid and x500 or a UUID. Versions 4 and 7 ignore both.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := generateUUID(version, namespace, args)
			if err != nil {
				return err
			}
			logging.Debug(root.logger(), "uuid: version %d: %s", version, value)
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().IntVar(&version, "version", 4, "UUID version: 3, 4, 5 or 7")
	cmd.Flags().StringVar(&namespace, "namespace", "dns", "namespace of name-based UUIDs")
	return cmd
}

func generateUUID(version int, namespace string, args []string) (uuid.UUID, error) {
	switch version {
	case 4:
		return uuids.NewV4(), nil
	case 7:
		return uuids.NewV7(), nil
	case 3, 5:
		if len(args) < 1 {
			return uuid.Nil, errMissingName
		}
		ns, err := uuids.ParseNamespace(namespace)
		if err != nil {
			return uuid.Nil, err
		}
		if version == 3 {
			return uuids.NewV3(ns, args[0]), nil
		}
		return uuids.NewV5(ns, args[0]), nil
	default:
		return uuid.Nil, fmt.Errorf("unsupported UUID version: %d", version)
	}
}
