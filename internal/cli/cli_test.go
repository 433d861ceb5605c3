package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useSQLite points the configuration at a fresh database file.  Tests
// using it cannot run in parallel because they set env vars.
func useSQLite(t *testing.T) {
	t.Helper()

	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "theatre.db"))
	t.Setenv("EVENTS_ENABLED", "false")

	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := RootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportAndExport(t *testing.T) {
	useSQLite(t)

	plays := writeFile(t, "plays.xml", `<Plays>
  <Play><Title>The Tempest</Title><Duration>02:15:00</Duration><Rating>3.2</Rating><Genre>Comedy</Genre>
    <Description>An island.</Description><Screenwriter>William Shakespeare</Screenwriter></Play>
  <Play><Title>Mystery</Title><Duration>02:15:00</Duration><Rating>3</Rating><Genre>Thriller</Genre>
    <Description>Unknown genre.</Description><Screenwriter>Nobody Known</Screenwriter></Play>
</Plays>`)

	out, _, err := run(t, "", "import", "plays", plays, "--summary")
	require.NoError(t, err)
	assert.Equal(t, "Successfully imported The Tempest with genre Comedy and a rating of 3.2!\n"+
		"Invalid data!\n\n1 accepted, 1 rejected\n", out)

	casts := `<Casts><Cast><FullName>Ariel Spirit</FullName><IsMainCharacter>true</IsMainCharacter>` +
		`<PhoneNumber>+44-20-123-4567</PhoneNumber><PlayId>1</PlayId></Cast></Casts>`
	out, _, err = run(t, casts, "import", "casts", "-")
	require.NoError(t, err)
	assert.Equal(t, "Successfully imported actor Ariel Spirit as a main character!\n", out)

	out, _, err = run(t, "", "export", "plays", "--max-rating", "5")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<Actor FullName="Ariel Spirit" MainCharacter="Plays main character in &#39;The Tempest&#39;."></Actor>`)

	target := filepath.Join(t.TempDir(), "theatres.json")
	_, errOut, err := run(t, "", "export", "theatres", "--min-halls", "1", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, errOut, "wrote "+target)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestImportErrors(t *testing.T) {
	useSQLite(t)

	_, _, err := run(t, "", "import", "halls", "x.xml")
	assert.Error(t, err)

	_, _, err = run(t, "", "import", "plays", filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)

	_, _, err = run(t, "<Plays><Play>", "import", "plays", "-")
	assert.ErrorContains(t, err, "malformed input")

	_, _, err = run(t, "", "export", "theatres")
	assert.Error(t, err, "--min-halls is required")
}

func TestMigrate(t *testing.T) {
	useSQLite(t)

	out, _, err := run(t, "", "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema ready (sqlite3)")
}

func TestToken(t *testing.T) {
	useSQLite(t)
	t.Setenv("JWT_SECRET", "cli-secret")

	out, _, err := run(t, "", "token", "--subject", "ops")
	require.NoError(t, err)

	parsed, err := jwt.Parse(strings.TrimSpace(out), func(*jwt.Token) (interface{}, error) {
		return []byte("cli-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "ops", claims["sub"])
	assert.Equal(t, "OPERATOR", claims["role"])

	t.Setenv("JWT_SECRET", "")
	_, _, err = run(t, "", "token", "--subject", "ops")
	assert.ErrorContains(t, err, "JWT_SECRET")
}
