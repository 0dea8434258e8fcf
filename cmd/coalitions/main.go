// Command coalitions ranks the possible governing coalitions of a parliament
// and draws their compatibility networks.
//
//	coalitions evaluate --scenario knesset.yaml --valid --top 10
//	coalitions network  --scenario knesset.yaml --out network.png
//	coalitions plot     --scenario knesset.yaml --out coalitions.svg --maximal --valid
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
