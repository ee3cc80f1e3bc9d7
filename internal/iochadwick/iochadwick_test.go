package iochadwick_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pitchwise/tjdelta/internal/iochadwick"
	"github.com/pitchwise/tjdelta/pkg/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const people = `key_person,key_uuid,key_mlbam,key_retro,key_bbref,key_bbref_minors,key_fangraphs,name_last,name_first,name_given
aaaa0001,u1,,,,doe-000jan,,Doe,Jane,Jane Marie
aaaa0002,u2,605400,doej001,doeja01,,12345,Doe,Jane,Jane Ann
aaaa0003,u3,640462,pukaj001,pukaj01,,19343,Puk,A. J.,Andrew Jay
aaaa0004,u4,,,roejo01,,,Roe,John,John
`

func TestLookup(t *testing.T) {
	p, err := iochadwick.Read(strings.NewReader(people))
	require.NoError(t, err)
	assert.Equal(t, 4, p.Len())
	ctx := context.Background()

	res, err := p.Lookup(ctx, "DOE", " jane ")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, 605400, res[0].TrackingID, "people with ids go first")
	assert.Equal(t, "doeja01", res[0].RegisterID)

	res, err = p.Lookup(ctx, "Roe", "John")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 0, res[0].TrackingID)
	assert.Equal(t, "roejo01", res[0].RegisterID)

	res, err = p.Lookup(ctx, "Puk", "A.J.")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestResolverWithPeople(t *testing.T) {
	p, err := iochadwick.Read(strings.NewReader(people))
	require.NoError(t, err)

	r := identity.New(p, &identity.Data{})
	id := r.Resolve(context.Background(), "A.J. Puk")
	assert.Equal(t, 640462, id.TrackingID)
	assert.Equal(t, "pukaj01", id.RegisterID)
}

func TestLookupCancelled(t *testing.T) {
	p, err := iochadwick.Read(strings.NewReader(people))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Lookup(ctx, "Doe", "Jane")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(path, []byte(people), 0644))
	p, err := iochadwick.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Len())

	_, err = iochadwick.Read(strings.NewReader("name_last,name_first\nDoe,Jane\n"))
	assert.ErrorContains(t, err, "key_mlbam")
}
