// Command cfgadv reads typed values out of INI-style configuration files.
//
//	cfgadv get -f pipeline.cfg -t quantity source vlsr
//	cfgadv iter -f pipeline.cfg cubes mol
//	cfgadv options -f pipeline.cfg source
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/folguinch/configparseradv"
	"github.com/folguinch/configparseradv/internal/optname"
	"github.com/folguinch/configparseradv/storefile"
)

var (
	cfgFile string
	format  string
	verbose bool

	index       int
	sep         string
	dtype       string
	fallback    string
	allowGlobal bool
)

var rootCmd = &cobra.Command{
	Use:   "cfgadv",
	Short: "Read typed values from INI-style configuration files",
	Long: "Cfgadv resolves typed, multi-value, and unit-aware parameters from\n" +
		"INI, TOML, or YAML configuration files, including indexed option\n" +
		"families (key0, key1, ...).",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var getCmd = &cobra.Command{
	Use:   "get SECTION OPTION",
	Short: "Resolve one value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}

		opts := []configparseradv.Option{
			configparseradv.WithDType(configparseradv.DType(dtype)),
			configparseradv.AllowGlobal(allowGlobal),
		}
		if cmd.Flags().Changed("index") {
			opts = append(opts, configparseradv.WithIndex(index))
		}
		if cmd.Flags().Changed("sep") {
			opts = append(opts, configparseradv.WithSep(sep))
		}
		if cmd.Flags().Changed("fallback") {
			opts = append(opts, configparseradv.WithFallback(fallback))
		}

		value, err := resolver.GetValue(args[0], args[1], opts...)
		if err != nil {
			return err
		}
		if value == nil {
			return fmt.Errorf("option %q not found in section %q", args[1], args[0])
		}
		fmt.Println(value)
		return nil
	},
}

var iterCmd = &cobra.Command{
	Use:   "iter SECTION OPTION",
	Short: "Print the value family of a logical key, one per line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}

		opts := []configparseradv.Option{
			configparseradv.WithDType(configparseradv.DType(dtype)),
		}
		if cmd.Flags().Changed("sep") {
			opts = append(opts, configparseradv.WithSep(sep))
		}

		it := resolver.Values(args[0], args[1], opts...)
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			fmt.Println(v)
		}
		return it.Err()
	},
}

var optionsCmd = &cobra.Command{
	Use:   "options SECTION",
	Short: "List the options of a section, grouping indexed families",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}

		for _, name := range store.Options(args[0]) {
			key, n := optname.Split(name)
			if n < 0 {
				fmt.Println(name)
				continue
			}
			fmt.Printf("%s (element %d of %s)\n", name, n, key)
		}
		return nil
	},
}

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the sections of the file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}

		for _, name := range store.Sections() {
			fmt.Println(name)
		}
		return nil
	},
}

func loadStore() (*storefile.FileStore, error) {
	return storefile.Load(cfgFile, storefile.Options{Format: format, Required: true})
}

func newResolver() (*configparseradv.Resolver, error) {
	store, err := loadStore()
	if err != nil {
		return nil, err
	}

	var opts []configparseradv.ResolverOption
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		opts = append(opts, configparseradv.WithLogger(logger))
	}
	return configparseradv.New(store, opts...), nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "file", "f", "", "configuration file path")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "file format: ini, toml, or yaml (default: from extension)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log resolution diagnostics")
	rootCmd.MarkPersistentFlagRequired("file")

	getCmd.Flags().IntVarP(&index, "index", "n", 0, "element of the value family to resolve")
	getCmd.Flags().StringVar(&sep, "sep", " ", "separator for multi-value strings")
	getCmd.Flags().StringVarP(&dtype, "type", "t", "", "conversion type (bool, int, float, path, list, intlist, floatlist, quantity, skycoord)")
	getCmd.Flags().StringVar(&fallback, "fallback", "", "value to use when resolution fails")
	getCmd.Flags().BoolVar(&allowGlobal, "allow-global", true, "let a single value satisfy any index")

	iterCmd.Flags().StringVar(&sep, "sep", " ", "separator for multi-value strings")
	iterCmd.Flags().StringVarP(&dtype, "type", "t", "", "conversion type")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(iterCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(sectionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
