// Command lvlgroup is a thin demo CLI over the lvlgroup library: it
// classifies stock groups, enumerates automorphisms, and prints witness
// reports. All heavy lifting lives in the library packages.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
