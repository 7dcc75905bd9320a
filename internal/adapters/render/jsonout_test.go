package render_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylemshaw/ganttify/internal/adapters/render"
	"github.com/kylemshaw/ganttify/internal/core/domain"
)

func TestJSON_Render(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	err := render.NewJSON().Render(buf, launchSchedule())

	require.NoError(t, err)
	g := goldie.New(t)
	g.Assert(t, "schedule", buf.Bytes())
}

func TestJSON_Render_EmptySchedule(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	err := render.NewJSON().Render(buf, emptySchedule())

	require.NoError(t, err)
	assert.Equal(t, "{\n  \"project\": \"empty-project\",\n  \"tasks\": []\n}\n", buf.String())
}

func TestJSON_Render_WriteError(t *testing.T) {
	t.Parallel()

	err := render.NewJSON().Render(brokenWriter{}, launchSchedule())

	require.ErrorContains(t, err, domain.ErrRenderFailed.Error())
}
