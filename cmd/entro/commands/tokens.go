/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tokens.go
Description: List-tokens command implementation. Prints the mask tokens of each
category source, the named dictionary filters, and the digest algorithms.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/entro/pkg/charclass"
	"github.com/kleascm/entro/pkg/digest"
	"github.com/kleascm/entro/pkg/interfaces"
	"github.com/kleascm/entro/pkg/lexical"
	"github.com/spf13/cobra"
)

// ListTokens lists mask tokens, filters and digest algorithms
func ListTokens(cmd *cobra.Command, args []string) {
	fmt.Println("🧩 Available Mask Tokens")
	fmt.Println("========================")
	fmt.Println()

	fmt.Printf("%s source:\n", interfaces.SourceLexical)
	for i, label := range lexical.Labels {
		fmt.Printf("  %d. %s\n", i+1, label)
	}
	fmt.Printf("  %d. %s - every dictionary word\n", len(lexical.Labels)+1, interfaces.AnyToken)
	fmt.Println()

	classes := charclass.NewSource()
	fmt.Printf("%s source:\n", interfaces.SourceCharClass)
	for i, token := range classes.Tokens() {
		members, _ := classes.CategoryMembers(token)
		fmt.Printf("  %d. %s - %d characters\n", i+1, token, len(members))
	}
	fmt.Println()

	fmt.Println("Dictionary filters (--filter):")
	for i, name := range lexical.PredicateNames() {
		fmt.Printf("  %d. %s\n", i+1, name)
	}
	fmt.Println()

	fmt.Println("Digest algorithms (--hash):")
	for i, name := range digest.Names() {
		h, _ := digest.Lookup(name)
		fmt.Printf("  %d. %s - %d hex digits\n", i+1, name, h.HexLen())
	}
}
