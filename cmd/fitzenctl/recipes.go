package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/repository"
	"FITZEN_BACK-END/internal/services"
	"FITZEN_BACK-END/internal/storage"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Manage the shared recipe catalogue",
}

var recipesCuisine string

var recipesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(stores *repository.Stores) error {
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTITLE\tCUISINE\tKCAL\tP\tC\tF")
			for _, r := range stores.Recipes.All() {
				if recipesCuisine != "" && !strings.EqualFold(r.Cuisine, recipesCuisine) {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n",
					r.ID, r.Title, r.Cuisine, r.Calories, r.Protein, r.Carbs, r.Fats)
			}
			return nil
		})
	},
}

var recipesImportCmd = &cobra.Command{
	Use:   "import <file.json|file.csv>",
	Short: "Append recipes from a JSON array or a CSV file with a header row",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipes, err := readRecipes(args[0])
		if err != nil {
			return err
		}
		return withStores(func(stores *repository.Stores) error {
			clock := services.Clock(services.SystemClock)
			for _, r := range recipes {
				if r.ID == "" {
					r.ID = services.NewID()
				}
				if r.CreatedAt == "" {
					r.CreatedAt = clock.Timestamp()
				}
				if err := stores.Recipes.Create(r); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d recipes\n", len(recipes))
			return nil
		})
	},
}

func init() {
	recipesListCmd.Flags().StringVar(&recipesCuisine, "cuisine", "", "Only show recipes of this cuisine")
	recipesCmd.AddCommand(recipesListCmd, recipesImportCmd)
	rootCmd.AddCommand(recipesCmd)
}

func readRecipes(path string) ([]models.Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var recipes []models.Recipe
		if err := json.NewDecoder(f).Decode(&recipes); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return recipes, nil
	case ".csv":
		return readRecipeCSV(f)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .json or .csv)", filepath.Ext(path))
	}
}

func readRecipeCSV(r io.Reader) ([]models.Recipe, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	var recipes []models.Recipe
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rec := make(storage.Record, len(header))
		for i, col := range header {
			if i < len(cells) {
				rec[strings.TrimSpace(col)] = cells[i]
			}
		}
		var recipe models.Recipe
		if err := storage.UnmarshalRecord(rec, &recipe); err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}
