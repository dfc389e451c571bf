package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"sfq/internal/cache"
	"sfq/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local SObject describe cache",
}

var cacheLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List cached SObject catalogs",
	RunE:  runCacheLs,
}

var cacheRmCmd = &cobra.Command{
	Use:   "rm <sobject>",
	Short: "Remove one cached SObject catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheRm,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached SObject catalog",
	RunE:  runCacheClear,
}

// initCacheCommands adds the cache commands to the root command.
func initCacheCommands() {
	cacheCmd.AddCommand(cacheLsCmd)
	cacheCmd.AddCommand(cacheRmCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

// openCache opens the describe cache at the configured path.
func openCache() (*cache.Cache, error) {
	path, err := expandPath(flags.CachePath)
	if err != nil {
		return nil, err
	}
	return cache.Open(path, config.DefaultTimeouts().CacheTTL)
}

func runCacheLs(_ *cobra.Command, _ []string) error {
	c, err := openCache()
	if err != nil {
		return err
	}
	defer closeCache(c)

	entries, err := c.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("describe cache is empty")
		return nil
	}

	now := time.Now()
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOBJECT\tFIELDS\tAGE")
	for _, entry := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", entry.SObject, len(entry.Fields), entry.Age(now).Round(time.Second))
	}
	return tw.Flush()
}

func runCacheRm(_ *cobra.Command, args []string) error {
	c, err := openCache()
	if err != nil {
		return err
	}
	defer closeCache(c)

	if err := c.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("removed cached catalog for %s\n", args[0])
	return nil
}

func runCacheClear(_ *cobra.Command, _ []string) error {
	c, err := openCache()
	if err != nil {
		return err
	}
	defer closeCache(c)

	if err := c.Clear(); err != nil {
		return err
	}
	fmt.Println("describe cache cleared")
	return nil
}

func closeCache(c *cache.Cache) {
	if err := c.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close cache: %v\n", err)
	}
}
