package domain

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tokens.yaml
var defaultTokensYAML []byte

// TokenList is the application's supported-token list.
type TokenList struct {
	Tokens []Token `yaml:"tokens"`
}

type Token struct {
	Symbol   string `yaml:"symbol"`
	Address  string `yaml:"address"`
	Decimals int    `yaml:"decimals"`
}

// Symbols returns the token symbols in file order.
func (l TokenList) Symbols() []string {
	symbols := make([]string, 0, len(l.Tokens))
	for _, t := range l.Tokens {
		symbols = append(symbols, t.Symbol)
	}
	return symbols
}

// LoadTokens reads a token list from path. An empty path yields the built-in
// list.
func LoadTokens(path string) (TokenList, error) {
	data := defaultTokensYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return TokenList{}, fmt.Errorf("failed to read token list: %w", err)
		}
	}
	return ParseTokens(data)
}

func ParseTokens(data []byte) (TokenList, error) {
	var list TokenList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return TokenList{}, fmt.Errorf("failed to parse token list: %w", err)
	}
	if len(list.Tokens) == 0 {
		return TokenList{}, fmt.Errorf("token list is empty")
	}

	seen := make(map[string]bool, len(list.Tokens))
	for i, t := range list.Tokens {
		symbol := strings.TrimSpace(t.Symbol)
		if symbol == "" {
			return TokenList{}, fmt.Errorf("token %d has no symbol", i)
		}
		if seen[symbol] {
			return TokenList{}, fmt.Errorf("duplicate token symbol: %s", symbol)
		}
		seen[symbol] = true
		list.Tokens[i].Symbol = symbol
	}
	return list, nil
}
