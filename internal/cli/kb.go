package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/podolabs/frontdesk/internal/config"
	"github.com/podolabs/frontdesk/internal/domain"
	"github.com/podolabs/frontdesk/internal/openai"
	"github.com/spf13/cobra"
)

// KBCmd returns the kb command group
func KBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Manage the knowledge base",
	}

	cmd.AddCommand(kbEmbedCmd())
	return cmd
}

func kbEmbedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Embed knowledge entries",
		Long:  "Read question/answer pairs from a JSON file, compute an embedding for each question, and write the result back out for the serve command to load",
		RunE:  runKBEmbed,
	}

	cmd.Flags().StringP("in", "i", "", "Input JSON file of question/answer pairs (required)")
	cmd.Flags().StringP("out", "o", "data/knowledge.json", "Output file")
	cmd.MarkFlagRequired("in")

	return cmd
}

func runKBEmbed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.HasOpenAI() {
		return fmt.Errorf("FRONTDESK_OPENAI_API_KEY is required")
	}

	inPath, _ := cmd.Flags().GetString("in")
	outPath, _ := cmd.Flags().GetString("out")

	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var entries []domain.KnowledgeEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}

	aiClient := openai.NewClient(cfg.OpenAIAPIKey)
	for i := range entries {
		if entries[i].Question == "" {
			return fmt.Errorf("entry %d has no question", i)
		}
		vec, err := aiClient.GenerateEmbedding(ctx, entries[i].Question)
		if err != nil {
			return fmt.Errorf("failed to embed entry %d (%q): %w", i, entries[i].Question, err)
		}
		entries[i].Vector = vec
		log.Printf("embedded %d/%d: %s", i+1, len(entries), entries[i].Question)
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	log.Printf("wrote %d entries to %s", len(entries), outPath)
	return nil
}
