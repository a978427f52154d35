package symbols

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nserrors "github.com/standardbeagle/namesake/internal/errors"
	"github.com/standardbeagle/namesake/internal/types"
)

func hasSymbol(name *types.Name, sym types.Symbol) bool {
	_, ok := name.Symbols()[sym]
	return ok
}

func TestDefaultLoadsOnce(t *testing.T) {
	d := Default()
	require.NotNil(t, d)
	assert.Same(t, d, Default())
	assert.NotEmpty(t, d.OrgTypes)
	assert.NotEmpty(t, d.NameGroups)
	assert.Contains(t, d.OrgTypeForms(), "gmbh")
	assert.Contains(t, d.OrgTypeForms(), "ltd")
}

func TestReplaceOrgTypes(t *testing.T) {
	d := Default()

	tests := []struct {
		input string
		want  []string
	}{
		{"ABC Gesellschaft mit beschränkter Haftung", []string{"abc", "gmbh"}},
		{"ABC Ltd.", []string{"abc", "ltd"}},
		{"Acme Limited Liability Company", []string{"acme", "llc"}},
		{"Siemens GmbH & Co. KG", []string{"siemens", "lp"}},
		{"Gazprom Neft PJSC", []string{"gazprom", "neft", "jsc"}},
		{"Blue Sky", []string{"blue", "sky"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, d.ReplaceOrgTypes(Tokenize(tt.input)))
		})
	}
}

func TestTagOrganizationSharedClass(t *testing.T) {
	d := Default()
	llc := types.NewSymbol(types.CategoryOrgClass, "LLC")

	gmbh := types.NewName("", []string{"abc", "gmbh"}, types.NameTypeOrganization)
	d.TagOrganization(gmbh)
	ltd := types.NewName("", []string{"abc", "ltd"}, types.NameTypeOrganization)
	d.TagOrganization(ltd)

	assert.True(t, hasSymbol(gmbh, llc))
	assert.True(t, hasSymbol(ltd, llc))
	assert.True(t, hasSymbol(gmbh, types.NewSymbol(types.CategoryOrgType, "gmbh")))
	assert.False(t, hasSymbol(ltd, types.NewSymbol(types.CategoryOrgType, "gmbh")))
}

func TestTagOrganizationStemsAndLocations(t *testing.T) {
	d := Default()
	name := types.NewName("", []string{"moscow", "industrial", "holdings", "2"}, types.NameTypeOrganization)
	d.TagOrganization(name)

	assert.True(t, hasSymbol(name, types.NewSymbol(types.CategoryLocation, "MOW")))
	assert.True(t, hasSymbol(name, types.NewSymbol(types.CategoryOrgSymbol, "HOLDING")))
	assert.True(t, hasSymbol(name, types.NewSymbol(types.CategoryOrgSymbol, "INDUSTRIES")))
	assert.True(t, hasSymbol(name, types.NewSymbol(types.CategoryNumeric, "2")))

	multi := types.NewName("", []string{"bank", "of", "new", "york"}, types.NameTypeOrganization)
	d.TagOrganization(multi)
	spans := multi.SpansFor(multi.Parts[3])
	require.Len(t, spans, 1)
	assert.Equal(t, "new york", spans[0].Comparable())
}

func TestTagPerson(t *testing.T) {
	d := Default()
	name := types.NewName("", []string{"sasha", "van", "der", "berg", "jr"}, types.NameTypePerson)
	d.TagPerson(name)

	assert.True(t, hasSymbol(name, types.NewSymbol(types.CategoryNick, "alexander")))
	assert.True(t, hasSymbol(name, types.NewSymbol(types.CategoryPerSymbol, "VAN")))
	assert.True(t, hasSymbol(name, types.NewSymbol(types.CategoryPerSymbol, "JR")))

	spans := name.SpansFor(name.Parts[2])
	var phrases []string
	for _, s := range spans {
		phrases = append(phrases, s.Comparable())
	}
	assert.Contains(t, phrases, "van der")
}

func TestTagPersonFoldedNames(t *testing.T) {
	d := Default()
	name := types.NewName("", []string{"pëtr", "müller"}, types.NameTypePerson)
	d.TagPerson(name)

	assert.True(t, hasSymbol(name, types.NewSymbol(types.CategoryPerName, "peter")))
	assert.NotEmpty(t, PhoneticCodes(Fold("müller")))
}

func TestPhoneticCodes(t *testing.T) {
	putin := PhoneticCodes("putin")
	require.NotEmpty(t, putin)
	assert.Equal(t, putin, PhoneticCodes("pudin"))

	assert.Nil(t, PhoneticCodes("al"))
	assert.Nil(t, PhoneticCodes("1234"))
	assert.Nil(t, PhoneticCodes("путин"))
}

func TestTagNumbers(t *testing.T) {
	d := Default()
	name := types.NewName("", []string{"007", "3rd", "third", "one", "21st", "rd"}, types.NameTypeOrganization)
	d.TagOrganization(name)

	assert.True(t, hasSymbol(name, types.NewSymbol(types.CategoryNumeric, "7")))
	assert.True(t, hasSymbol(name, types.NewSymbol(types.CategoryNumeric, "1")))
	assert.True(t, hasSymbol(name, types.NewSymbol(types.CategoryOrdinal, "21")))
	assert.Len(t, name.SpansFor(name.Parts[1]), 1)
	assert.Equal(t, types.NewSymbol(types.CategoryOrdinal, "3"), name.SpansFor(name.Parts[1])[0].Symbol)
	assert.Equal(t, types.NewSymbol(types.CategoryOrdinal, "3"), name.SpansFor(name.Parts[2])[0].Symbol)
	assert.Empty(t, name.SpansFor(name.Parts[5]))
}

func TestStripPrefixes(t *testing.T) {
	d := Default()

	assert.Equal(t, []string{"john", "smith"}, d.StripHonorifics([]string{"his", "excellency", "dr", "john", "smith"}))
	assert.Equal(t, []string{"dr"}, d.StripHonorifics([]string{"dr"}), "never strips the last token")
	assert.Equal(t, []string{"atlantic", "star"}, d.StripObjectPrefixes([]string{"m", "v", "atlantic", "star"}))
	assert.Equal(t, []string{"beatles"}, d.StripOrgPrefixes([]string{"the", "beatles"}))
	assert.True(t, d.IsStopword("of"))
	assert.False(t, d.IsStopword("bank"))
}

func TestBuildErrors(t *testing.T) {
	valid := func() fstest.MapFS {
		fsys := fstest.MapFS{}
		for _, f := range []string{"org_types", "org_symbols", "locations", "numerals", "person_names", "person_symbols", "lexicon"} {
			data, err := dataFS.ReadFile("data/" + f + ".toml")
			require.NoError(t, err)
			fsys["data/"+f+".toml"] = &fstest.MapFile{Data: data}
		}
		return fsys
	}

	t.Run("valid", func(t *testing.T) {
		_, err := build(valid())
		require.NoError(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		fsys := valid()
		fsys["data/org_types.toml"] = &fstest.MapFile{Data: []byte("[[type]\ncompare = ")}
		_, err := build(fsys)
		require.Error(t, err)

		var dictErr *nserrors.DictionaryError
		require.True(t, errors.As(err, &dictErr))
		assert.Equal(t, "org_types", dictErr.Dictionary)
	})

	t.Run("missing class", func(t *testing.T) {
		fsys := valid()
		fsys["data/org_types.toml"] = &fstest.MapFile{Data: []byte("[[type]]\ncompare = \"ltd\"\n")}
		_, err := build(fsys)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		fsys := valid()
		delete(fsys, "data/lexicon.toml")
		_, err := build(fsys)

		var dictErr *nserrors.DictionaryError
		require.True(t, errors.As(err, &dictErr))
		assert.Equal(t, "lexicon", dictErr.Dictionary)
	})
}

func embeddedFS(t *testing.T) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	for _, f := range []string{"org_types", "org_symbols", "locations", "numerals", "person_names", "person_symbols", "lexicon"} {
		data, err := dataFS.ReadFile("data/" + f + ".toml")
		require.NoError(t, err)
		fsys["data/"+f+".toml"] = &fstest.MapFile{Data: data}
	}
	return fsys
}

func TestSymbolOrderIsStable(t *testing.T) {
	fsys := embeddedFS(t)
	fsys["data/org_symbols.toml"] = &fstest.MapFile{Data: []byte(
		"[symbols]\nZETA = [\"mutual\"]\nALPHA = [\"mutual\"]\nMIDDLE = [\"mutual\"]\n")}

	for i := 0; i < 10; i++ {
		d, err := build(fsys)
		require.NoError(t, err)

		name := types.NewName("", []string{"mutual"}, types.NameTypeOrganization)
		d.TagOrganization(name)

		var ids []string
		for _, span := range name.SpansFor(name.Parts[0]) {
			ids = append(ids, span.Symbol.ID)
		}
		assert.Equal(t, []string{"ALPHA", "MIDDLE", "ZETA"}, ids)
	}
}

func TestDigest(t *testing.T) {
	digest := Default().Digest()
	assert.Len(t, digest, 16)

	d, err := build(embeddedFS(t))
	require.NoError(t, err)
	assert.Equal(t, digest, d.Digest())

	fsys := embeddedFS(t)
	fsys["data/lexicon.toml"] = &fstest.MapFile{Data: append([]byte("# edited\n"), fsys["data/lexicon.toml"].Data...)}
	changed, err := build(fsys)
	require.NoError(t, err)
	assert.NotEqual(t, digest, changed.Digest())
}
