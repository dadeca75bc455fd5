package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"clinic-cms/internal/domains/content/model"
	"clinic-cms/internal/domains/content/service"
	"clinic-cms/pkg/logger"
)

// SchemaEnsurer is implemented by strategies that need a table created.
type SchemaEnsurer interface {
	EnsureSchema(ctx context.Context) error
}

var ErrAlreadySeeded = errors.New("content already exists; rerun with --force to overwrite")

// ========================================
// SEED
// ========================================

func newSeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the default clinic content",
		RunE: func(cmd *cobra.Command, args []string) error {
			var schema SchemaEnsurer
			if appContainer.RemoteStore != nil {
				schema = appContainer.RemoteStore
			}
			return runSeed(cmd.Context(), appContainer.ContentService, schema, force, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing content")
	return cmd
}

func runSeed(ctx context.Context, svc service.ServiceInterface, schema SchemaEnsurer, force bool, out io.Writer) error {
	if schema != nil {
		if err := schema.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	// Only a missing or undecodable document is replaced without --force.
	_, err := svc.Get(ctx)
	switch {
	case err == nil && !force:
		return ErrAlreadySeeded
	case err != nil && !force && !errors.Is(err, model.ErrNotFound) && !errors.Is(err, model.ErrCorrupt):
		return err
	}

	if err := svc.Save(ctx, model.DefaultDocument()); err != nil {
		logger.Error("Seeding CMS document failed", err)
		return err
	}
	logger.Info("CMS document seeded", map[string]interface{}{"storage": svc.StorageName(), "force": force})
	fmt.Fprintf(out, "Seeded default content into %s storage\n", svc.StorageName())
	return nil
}

// ========================================
// EXPORT
// ========================================

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the current document as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return runExport(cmd.Context(), appContainer.ContentService, out)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to FILE instead of stdout")
	return cmd
}

func runExport(ctx context.Context, svc service.ServiceInterface, out io.Writer) error {
	doc, err := svc.Get(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ========================================
// IMPORT
// ========================================

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the whole document with the contents of FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return runImport(cmd.Context(), appContainer.ContentService, f, cmd.OutOrStdout())
		},
	}
}

func runImport(ctx context.Context, svc service.ServiceInterface, in io.Reader, out io.Writer) error {
	var doc model.Document
	dec := json.NewDecoder(in)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("invalid CMS document: %w", err)
	}

	if err := svc.Save(ctx, &doc); err != nil {
		logger.Error("Importing CMS document failed", err)
		return err
	}
	logger.Info("CMS document imported", map[string]interface{}{"storage": svc.StorageName()})
	fmt.Fprintf(out, "Imported document into %s storage\n", svc.StorageName())
	return nil
}
