package salon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

func Test_StripAPISubdomain(t *testing.T) {
	var res string
	var err error
	res, err = stripAPISubdomain("https://api.critiq.games/")
	assert.NoError(t, err)
	assert.EqualValues(t, "https://critiq.games/", res)

	res, err = stripAPISubdomain("http://api.localhost.com:8080/")
	assert.NoError(t, err)
	assert.EqualValues(t, "http://localhost.com:8080/", res)

	_, err = stripAPISubdomain("# definitely @)#(*% not an URL")
	assert.Error(t, err)
}

func Test_AddAPISubdomain(t *testing.T) {
	var res string
	var err error
	res, err = addAPISubdomain("https://critiq.games")
	assert.NoError(t, err)
	assert.EqualValues(t, "https://api.critiq.games", res)

	// already prefixed addresses are left alone
	res, err = addAPISubdomain("https://api.critiq.games")
	assert.NoError(t, err)
	assert.EqualValues(t, "https://api.critiq.games", res)
}

func Test_SetAddress(t *testing.T) {
	ctx := NewContext(kingpin.New("critic", "test"))
	ctx.SetAddress("https://critiq.games")

	assert.EqualValues(t, "https://critiq.games", ctx.WebAddress())
	assert.EqualValues(t, "https://api.critiq.games", ctx.APIAddress())
}

func Test_UserAgent(t *testing.T) {
	ctx := NewContext(kingpin.New("critic", "test"))
	ctx.VersionString = "1.2.3"
	assert.EqualValues(t, "critic/1.2.3", ctx.UserAgent())

	ctx.UserAgentAddition = "itch-app/25.0"
	assert.EqualValues(t, "critic/1.2.3 itch-app/25.0", ctx.UserAgent())
}

func Test_NewClientUsesContext(t *testing.T) {
	ctx := NewContext(kingpin.New("critic", "test"))
	ctx.VersionString = "1.2.3"
	ctx.SetAddress("https://critiq.games")

	client := ctx.NewClient("tok")
	assert.EqualValues(t, "tok", client.Token)
	assert.EqualValues(t, "https://api.critiq.games", client.BaseURL)
	assert.EqualValues(t, "critic/1.2.3", client.UserAgent)
	assert.Equal(t, ctx.HTTPClient, client.HTTPClient)
}

func Test_LoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig("/does/not/exist.toml")
	assert.NoError(t, err)
	assert.Empty(t, cfg.Address)
	assert.Empty(t, cfg.Identity)
}
