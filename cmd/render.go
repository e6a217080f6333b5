package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tmoida/lava-test-plans/internal/overlay"
	"github.com/tmoida/lava-test-plans/internal/presign"
	"github.com/tmoida/lava-test-plans/internal/render"
)

var (
	flagTemplates        []string
	flagOutputDir        string
	flagOverlays         overlay.List
	flagAudioClips       bool
	flagAudioClipsObject string
	flagExpiresIn        time.Duration
)

func init() {
	renderCmd.Flags().StringArrayVarP(&flagTemplates, "template", "t", nil, "template file to render (repeatable)")
	renderCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", "directory rendered plans are written to (stdout when omitted)")
	renderCmd.Flags().Var(&flagOverlays, "overlay", `overlay source URL with an optional destination path (repeatable; destination defaults to /)`)
	renderCmd.Flags().BoolVar(&flagAudioClips, "audio-clips", false, "mint a pre-signed audio clips URL and expose it as audio_clips_url")
	renderCmd.Flags().StringVar(&flagAudioClipsObject, "audio-clips-object", presign.DefaultObject, "s3://bucket/key of the audio clips archive")
	renderCmd.Flags().DurationVar(&flagExpiresIn, "expires-in", time.Hour, "lifetime of the pre-signed URL")

	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render test plan templates with the merged context",
	Long: `Renders each --template with the merged variable context. Collected
--overlay pairs are exposed to templates under "overlays", annotated with
the archive and compression formats derived from their URLs. With
--audio-clips a pre-signed URL for the audio clips archive is added under
"audio_clips_url"; if signing fails the key is simply absent.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	if len(flagTemplates) == 0 {
		return fmt.Errorf("at least one --template is required")
	}

	context, err := buildContext()
	if err != nil {
		return err
	}

	if flagAudioClips {
		signer := presign.New(flagAudioClipsObject, flagExpiresIn)
		if url, ok := signer.URL(cmd.Context()); ok {
			context["audio_clips_url"] = url
		} else {
			log.Warn().Msg("audio clips URL could not be signed; rendering without it")
		}
	}

	if flagOutputDir != "" {
		if err := os.MkdirAll(flagOutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	r := &render.Renderer{
		Context:  context,
		Overlays: flagOverlays,
		OutDir:   flagOutputDir,
		Out:      cmd.OutOrStdout(),
	}

	return r.Render(cmd.Context(), flagTemplates)
}
