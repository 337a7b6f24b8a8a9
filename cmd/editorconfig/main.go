// Copyright 2024 The editorconfig-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command editorconfig prints the EditorConfig properties that apply to
// one or more file paths, one "key=value" line per property, sorted by
// key. It is a thin CLI front end over the editorconfig package, not
// part of the core.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tamlil/editorconfig-go"
)

// versionFlag adapts editorconfig.Version to pflag.Value so "-b" can be
// bound directly to an Options.Version.
type versionFlag struct {
	v editorconfig.Version
}

func (f *versionFlag) String() string { return f.v.String() }

func (f *versionFlag) Set(s string) error {
	v, err := editorconfig.ParseVersion(s)
	if err != nil {
		return err
	}
	f.v = v
	return nil
}

func (f *versionFlag) Type() string { return "version" }

func main() {
	var (
		showVersion bool
		fileName    string
	)
	ecVersion := &versionFlag{v: editorconfig.MaxVersion}

	rootCmd := &cobra.Command{
		Use:           "editorconfig [flags] FILE...",
		Short:         "Print the EditorConfig properties that apply to a file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Printf("EditorConfig Version %s\n", editorconfig.MaxVersion)
				return nil
			}

			options := editorconfig.Options{
				FileName: fileName,
				Version:  ecVersion.v,
			}

			for _, file := range args {
				if len(args) > 1 {
					fmt.Printf("[%s]\n", file)
				}
				if err := printProperties(file, options); err != nil {
					return err
				}
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "display the version")
	rootCmd.Flags().StringVarP(&fileName, "file", "f", editorconfig.DefaultFileName, "name of EditorConfig file to search for")
	rootCmd.Flags().VarP(ecVersion, "version-spec", "b", "EditorConfig version to use")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printProperties(file string, options editorconfig.Options) error {
	props, err := editorconfig.PropertiesWithOptions(file, options)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("%s=%s\n", k, props[k])
	}
	return nil
}
