package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"unicode"

	"github.com/spf13/cobra"
)

const defaultScriptsDir = "internal/scripts"

var scriptTmpl = template.Must(template.New("script").Parse(`package scripts

import (
	"go.uber.org/zap"

	"safeget/internal/components"
	"safeget/internal/engine"
	"safeget/internal/safe"
)

func init() {
	engine.RegisterComponent("{{.Name}}", func() engine.Serializable {
		return &{{.Name}}{Speed: 1}
	})
}

type {{.Name}} struct {
	engine.BaseComponent
	Speed float32

	body *components.Rigidbody
}

func (s *{{.Name}}) Start() {
	if err := safe.AssignOptional(s, &s.body, safe.InParent()); err != nil {
		engine.Logger().Warn("{{.Name}} lookup failed", zap.Error(err))
	}
}

func (s *{{.Name}}) Update(deltaTime float32) {
	if !engine.IsAlive(s.body) {
		return
	}
	// TODO: implement behavior
}

func (s *{{.Name}}) TypeName() string {
	return "{{.Name}}"
}

func (s *{{.Name}}) Serialize() map[string]any {
	return map[string]any{
		"speed": s.Speed,
	}
}

func (s *{{.Name}}) Deserialize(data map[string]any) {
	readFloat(data, "speed", &s.Speed)
}
`))

func newScriptCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "newscript <ScriptName>",
		Short:   "Scaffold a new script component",
		Example: `  safeget newscript EnemyChaser`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, content, err := renderScript(args[0])
			if err != nil {
				return err
			}
			outPath := filepath.Join(dir, filename)
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists", outPath)
			}
			if err := os.WriteFile(outPath, content, 0o644); err != nil {
				return fmt.Errorf("write script: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created %s\n", outPath)
			fmt.Fprintf(out, "Script %q registered. Add it to a scene object:\n\n", args[0])
			fmt.Fprintf(out, "  components:\n")
			fmt.Fprintf(out, "    - type: %s\n", args[0])
			fmt.Fprintf(out, "      props:\n")
			fmt.Fprintf(out, "        speed: 1.0\n")
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", defaultScriptsDir, "directory to write the script into")
	return cmd
}

func renderScript(name string) (string, []byte, error) {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return "", nil, errors.New("script name must start with an uppercase letter")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return "", nil, fmt.Errorf("script name %q is not a valid Go identifier", name)
		}
	}
	var buf bytes.Buffer
	if err := scriptTmpl.Execute(&buf, struct{ Name string }{name}); err != nil {
		return "", nil, err
	}
	return toSnakeCase(name) + ".go", buf.Bytes(), nil
}

func toSnakeCase(s string) string {
	var result []rune
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			result = append(result, '_')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}
