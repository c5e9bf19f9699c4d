// x12 CLI
//
// Command-line access to the X12 engine: parse and validate partner
// documents, wrap transaction sets in envelopes from a partner profile,
// emit 997 functional acknowledgments and render inspection views.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sirosfoundation/go-x12/internal/config"
	"github.com/sirosfoundation/go-x12/internal/inspect"
	"github.com/sirosfoundation/go-x12/pkg/envelope"
	"github.com/sirosfoundation/go-x12/pkg/generator"
	"github.com/sirosfoundation/go-x12/pkg/parser"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

var version = "dev"

var (
	cfgFile    string
	verbose    bool
	jsonOutput bool
	lineBreaks bool
	outPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "x12",
		Short: "x12 - ANSI X12 EDI envelope and transaction toolkit",
		Long: `x12 parses, validates, builds and acknowledges ANSI X12 EDI
interchanges for the retail purchasing cycle: 850 purchase orders,
855 acknowledgments, 856 advance ship notices, 810 invoices and
997 functional acknowledgments.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "partner profile file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "machine-readable output and logs")
	rootCmd.PersistentFlags().BoolVar(&lineBreaks, "line-breaks", false, "newline after every segment in generated output")
	rootCmd.PersistentFlags().StringVarP(&outPath, "output", "o", "", "write output to file instead of stdout")

	rootCmd.AddCommand(
		newParseCmd(),
		newValidateCmd(),
		newAckCmd(),
		newBuildCmd(),
		newInspectCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newLogger builds the run logger: text or JSON handler on stderr,
// debug level with --verbose, every record tagged with a session id.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler).With("session", uuid.New().String())
}

func loadProfile() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

// readInput reads the document named by the single positional argument,
// with "-" meaning stdin.
func readInput(args []string) (string, error) {
	if args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

func writeOutput(text string) error {
	if outPath == "" {
		fmt.Println(text)
		return nil
	}
	return os.WriteFile(outPath, []byte(text), 0o644)
}

// logFindings reports every finding through the logger and returns the
// number of error-severity ones.
func logFindings(logger *slog.Logger, findings []envelope.Error) int {
	errors := 0
	for _, f := range findings {
		attrs := []any{"code", f.Code, "segment", f.SegmentID}
		if f.Element > 0 {
			attrs = append(attrs, "element", f.Element)
		}
		if f.Path.Group > 0 {
			attrs = append(attrs, "group", f.Path.Group, "set", f.Path.Set)
		}
		if f.Severity == envelope.SeverityError {
			errors++
			logger.Error(f.Message, attrs...)
		} else {
			logger.Warn(f.Message, attrs...)
		}
	}
	return errors
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a document and report its envelope structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			text, err := readInput(args)
			if err != nil {
				return err
			}

			res := x12.Parse(text)
			errors := logFindings(logger, append(res.Errors, res.Warnings...))
			if res.Interchange == nil {
				return fmt.Errorf("document has no recoverable interchange")
			}

			summary, err := summarize(res.Interchange)
			if err != nil {
				return err
			}
			if err := writeOutput(summary); err != nil {
				return err
			}
			if errors > 0 {
				return fmt.Errorf("document has %d error findings", errors)
			}
			return nil
		},
	}
}

// summarize renders the envelope outline, as JSON when --json is set.
func summarize(ic *envelope.Interchange) (string, error) {
	if jsonOutput {
		return inspect.JSON(ic)
	}
	var b strings.Builder
	h := ic.Header
	fmt.Fprintf(&b, "interchange %s:%s -> %s:%s version %s control %s\n",
		h.SenderQualifier, h.SenderID, h.ReceiverQualifier, h.ReceiverID, h.Version, h.ControlNumber)
	for _, g := range ic.Groups {
		fmt.Fprintf(&b, "  group %s control %s\n", g.Header.FunctionalCode, g.Header.ControlNumber)
		for _, set := range g.Sets {
			fmt.Fprintf(&b, "    set %s control %s segments %d\n",
				set.Header.Code, set.Header.ControlNumber, len(set.Segments))
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Run the envelope and transaction-set rule tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			text, err := readInput(args)
			if err != nil {
				return err
			}

			res := x12.Parse(text)
			findings := append(res.Errors, res.Warnings...)
			if res.Interchange != nil {
				findings = append(findings, x12.ValidateInterchange(res.Interchange)...)
			}
			errors := logFindings(logger, findings)

			if res.Interchange == nil {
				return fmt.Errorf("document has no recoverable interchange")
			}
			if errors > 0 {
				return fmt.Errorf("document has %d error findings", errors)
			}
			logger.Info("document is valid", "findings", len(findings))
			return nil
		},
	}
}

func newAckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ack <file>",
		Short: "Emit a 997 functional acknowledgment for a received document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			text, err := readInput(args)
			if err != nil {
				return err
			}

			res := x12.Parse(text)
			if res.Interchange == nil {
				return fmt.Errorf("document has no recoverable interchange")
			}
			h := res.Interchange.Header

			// The ack travels back to the document's sender. The local
			// profile identity wins over the inbound ISA receiver.
			sender := envelope.Identity{Qualifier: h.ReceiverQualifier, ID: h.ReceiverID}
			receiver := envelope.Identity{Qualifier: h.SenderQualifier, ID: h.SenderID}
			if cfgFile != "" {
				cfg, err := loadProfile()
				if err != nil {
					return err
				}
				sender = cfg.Local.Envelope()
			}

			ack, err := x12.Generate997ForDocument(text, sender, receiver)
			if err != nil {
				return err
			}
			logger.Debug("acknowledgment generated", "receiver", receiver.ID)
			return writeOutput(ack)
		},
	}
}

// bodyLeaders maps the beginning segment of a transaction set body to
// its set code, for build inputs that do not name one.
var bodyLeaders = map[string]string{
	"BEG": envelope.SetPurchaseOrder,
	"BAK": envelope.SetPOAck,
	"BSN": envelope.SetShipNotice,
	"BIG": envelope.SetInvoice,
	"AK1": envelope.SetFunctionalAck,
}

func newBuildCmd() *cobra.Command {
	var setCode string
	var partner string

	cmd := &cobra.Command{
		Use:   "build <body-file>",
		Short: "Wrap transaction set body segments in a full interchange",
		Long: `Build reads bare body segments (no ISA/GS/ST envelopes), wraps them
in a transaction set and envelopes addressed from the partner profile,
and writes the complete document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			text, err := readInput(args)
			if err != nil {
				return err
			}

			segs, err := bodySegments(text)
			if err != nil {
				return err
			}
			code := setCode
			if code == "" {
				code = bodyLeaders[segs[0].ID]
				if code == "" {
					return fmt.Errorf("cannot infer a set code from leading segment %s, use --set", segs[0].ID)
				}
			}

			cfg, err := loadProfile()
			if err != nil {
				return err
			}
			receiver, err := cfg.Partner(partner)
			if err != nil {
				return err
			}

			set := envelope.NewTransactionSet(code, segs...)
			ic, err := x12.BuildInterchange([]*envelope.TransactionSet{set},
				cfg.Local.Envelope(), receiver, x12.BuildOptions{
					Version:        cfg.Defaults.Version,
					UsageIndicator: cfg.Defaults.Usage,
					AckRequested:   cfg.Defaults.AckRequested,
				})
			if err != nil {
				return err
			}

			breaks := cfg.Defaults.LineBreaks || lineBreaks
			out, err := x12.Generate(ic, generator.Options{LineBreaks: breaks})
			if err != nil {
				return err
			}
			logger.Debug("interchange built", "set", code, "receiver", receiver.ID)
			return writeOutput(out)
		},
	}

	cmd.Flags().StringVarP(&setCode, "set", "t", "", "transaction set code (inferred from the body when omitted)")
	cmd.Flags().StringVarP(&partner, "partner", "p", "", "profile partner to address")
	return cmd
}

// bodySegments splits segment-terminated body text into decoded
// segments using the default separators.
func bodySegments(text string) ([]*envelope.Segment, error) {
	var segs []*envelope.Segment
	for _, raw := range strings.Split(text, "~") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		segs = append(segs, parser.DecodeSegment(raw, envelope.DefaultDelimiters()))
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("input has no segments")
	}
	return segs, nil
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Render a document as XML (or JSON with --json)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			text, err := readInput(args)
			if err != nil {
				return err
			}

			res := x12.Parse(text)
			logFindings(logger, append(res.Errors, res.Warnings...))
			if res.Interchange == nil {
				return fmt.Errorf("document has no recoverable interchange")
			}

			var out string
			if jsonOutput {
				out, err = inspect.JSON(res.Interchange)
			} else {
				out, err = inspect.XML(res.Interchange)
			}
			if err != nil {
				return err
			}
			return writeOutput(out)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("x12 version %s\n", version)
		},
	}
}
