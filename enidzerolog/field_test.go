package enidzerolog

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/enid"
)

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := log.Log()
	e = ID40(e, "small", enid.MustParseID40("m6sc7n75"))
	e = ID80(e, "large", enid.MustParseID80("y3gx5gxm-mpb8ey39"))
	e = ID(e, "any", enid.MustParseID("wrmgc840"))
	e.Send()

	require.JSONEq(t,
		`{"small":"m6sc7n75","large":"y3gx5gxm-mpb8ey39","any":"wrmgc840"}`,
		buf.String())
}

func TestObj(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	log.Log().Object("ref", Obj{Key: "id", ID: enid.MustParseID("m6sc7n75")}).Send()

	require.JSONEq(t, `{"ref":{"id":"m6sc7n75"}}`, buf.String())
}
