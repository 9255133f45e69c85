// Command wavlmap-demo exercises the wavlmap package end to end: a tiny
// interactive ordered store over int keys and string values, backed by a
// single in-process Map, with one subcommand per façade operation.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ordered-kv/wavlmap"
)

var store = wavlmap.New[int, string]()

func main() {
	root := &cobra.Command{
		Use:   "wavlmap-demo",
		Short: "exercise an ordered key-value map backed by a WAVL tree",
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace rebalancing events")
	cobra.OnInitialize(func() {
		if verbose {
			wavlmap.SetLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())
		}
	})

	root.AddCommand(setCmd(), getCmd(), deleteCmd(), rangeCmd(), entriesCmd(), atCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseKey(s string) (int, error) {
	return strconv.Atoi(s)
}

func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "insert or overwrite a key's value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args[0])
			if err != nil {
				return err
			}
			old, had := store.Insert(key, args[1])
			if had {
				fmt.Printf("replaced %d (was %q)\n", key, old)
			} else {
				fmt.Printf("inserted %d\n", key)
			}
			return nil
		},
	}
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "look up a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args[0])
			if err != nil {
				return err
			}
			v, ok := store.Get(key)
			if !ok {
				fmt.Printf("%d: not found\n", key)
				return nil
			}
			fmt.Printf("%d = %q\n", key, v)
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "remove a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args[0])
			if err != nil {
				return err
			}
			old, ok := store.Remove(key)
			if !ok {
				fmt.Printf("%d: not found\n", key)
				return nil
			}
			fmt.Printf("removed %d (was %q)\n", key, old)
			return nil
		},
	}
}

func rangeCmd() *cobra.Command {
	var exclusive bool
	cmd := &cobra.Command{
		Use:   "range [start] [end]",
		Short: "list every entry in [start, end]",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var start, end *int
			if len(args) > 0 {
				k, err := parseKey(args[0])
				if err != nil {
					return err
				}
				start = &k
			}
			if len(args) > 1 {
				k, err := parseKey(args[1])
				if err != nil {
					return err
				}
				end = &k
			}
			r := store.Range(start, end, exclusive)
			if r.IsEmpty() {
				fmt.Println("(empty range)")
				return nil
			}
			for k, v := range r.Entries() {
				fmt.Printf("%d = %s\n", k, v)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "exclude the end key")
	return cmd
}

func entriesCmd() *cobra.Command {
	var reverse bool
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "list every entry in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := store.Entries()
			if reverse {
				seq = store.EntriesReverse()
			}
			for k, v := range seq {
				fmt.Printf("%d = %s\n", k, v)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&reverse, "reverse", false, "list in descending order")
	return cmd
}

func atCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "at <index>",
		Short: "print the index-th entry in ascending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			c := store.At(idx)
			k, v, ok := c.Entry()
			if !ok {
				fmt.Printf("%d: out of range\n", idx)
				return nil
			}
			fmt.Printf("%d = %s\n", k, v)
			return nil
		},
	}
}
