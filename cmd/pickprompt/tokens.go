package main

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// countTokens reports how many tokens the content blob costs for the
// given model. The tokenizer fetches its encoding on first use.
func countTokens(content, model string) (int, error) {
	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return 0, fmt.Errorf("failed to get tokenizer for model %q: %w", model, err)
	}
	return len(tkm.Encode(content, nil, nil)), nil
}
