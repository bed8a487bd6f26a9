package validation

import (
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"github.com/deepesh-sr/Textura-Backend/app/server/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func validBlogInput() *BlogInput {
	return &BlogInput{
		Title:   utils.P("Hello world"),
		Slug:    utils.P("hello-world"),
		Content: utils.P("<p>Some <strong>content</strong> here</p>"),
	}
}

func TestValidateCreate_Defaults(t *testing.T) {
	v, err := ValidateCreate(validBlogInput())
	require.NoError(t, err)

	assert.Equal(t, "Hello world", v.Title)
	assert.Equal(t, "hello-world", v.Slug)
	assert.Equal(t, models.BlogStatusDraft, v.Status)
	assert.Equal(t, "<p>Some <strong>content</strong> here</p>", v.Content)

	blog := v.Model()
	assert.Equal(t, "hello-world", blog.Slug)
	assert.False(t, blog.IsPublished())
}

func TestValidateCreate_Slug(t *testing.T) {
	tests := []struct {
		slug  string
		valid bool
	}{
		{"hello-world", true},
		{"post-2025", true},
		{"abc", true},
		{"Hello World!", false},
		{"hello_world", false},
		{"ab", false},
		{strings.Repeat("a", 101), false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			in := validBlogInput()
			in.Slug = utils.P(tt.slug)
			_, err := ValidateCreate(in)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var errs Errors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs, "slug")
		})
	}
}

func TestValidateCreate_CollectsAllFields(t *testing.T) {
	_, err := ValidateCreate(&BlogInput{
		Title:           utils.P("ab"),
		Slug:            utils.P("Bad Slug"),
		Content:         utils.P("short"),
		MetaTitle:       utils.P(strings.Repeat("t", 71)),
		MetaDescription: utils.P(strings.Repeat("d", 161)),
		FeaturedImage:   utils.P("not a url"),
		Status:          utils.P("archived"),
	})

	var errs Errors
	require.ErrorAs(t, err, &errs)
	for _, field := range []string{"title", "slug", "content", "metaTitle", "metaDescription", "featuredImage", "status"} {
		assert.Contains(t, errs, field)
		assert.NotEmpty(t, errs[field])
	}
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateCreate_MissingRequired(t *testing.T) {
	_, err := ValidateCreate(&BlogInput{})

	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, []string{"is required"}, errs["title"])
	assert.Equal(t, []string{"is required"}, errs["slug"])
	assert.Equal(t, []string{"is required"}, errs["content"])
	assert.NotContains(t, errs, "status")

	_, err = ValidateCreate(nil)
	assert.Error(t, err)
}

func TestValidateCreate_OptionalFields(t *testing.T) {
	in := validBlogInput()
	in.MetaTitle = utils.P("Meta")
	in.MetaDescription = utils.P("Description")
	in.FeaturedImage = utils.P("https://cdn.example.com/a.png")
	in.Status = utils.P("published")

	v, err := ValidateCreate(in)
	require.NoError(t, err)
	assert.Equal(t, models.BlogStatusPublished, v.Status)
	assert.Equal(t, "https://cdn.example.com/a.png", v.FeaturedImage)
}

func TestValidateCreate_SanitizesContent(t *testing.T) {
	in := validBlogInput()
	in.Content = utils.P(`<p onclick="steal()">Hello there</p><script>alert(1)</script>`)

	v, err := ValidateCreate(in)
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello there</p>", v.Content)
}

func TestValidateCreate_BlankOptional(t *testing.T) {
	in := validBlogInput()
	in.Status = utils.P("")
	in.FeaturedImage = utils.P(" ")
	in.MetaTitle = utils.P("")

	v, err := ValidateCreate(in)
	require.NoError(t, err)
	assert.Equal(t, models.BlogStatusDraft, v.Status)
	assert.Empty(t, v.FeaturedImage)
	assert.Empty(t, v.MetaTitle)
}

func TestValidateCreate_ContentLengthAfterSanitize(t *testing.T) {
	in := validBlogInput()
	in.Content = utils.P("<script>alert(1)</script>")

	_, err := ValidateCreate(in)
	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "content")

	_, err = ValidateUpdate(&BlogInput{Content: utils.P(`<style>p{}</style><script>steal()</script>`)})
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "content")
}

func TestValidateUpdate_Partial(t *testing.T) {
	p, err := ValidateUpdate(&BlogInput{Status: utils.P("published")})
	require.NoError(t, err)

	blog := &models.Blog{Title: "Old title", Slug: "old", Content: "old content", Status: models.BlogStatusDraft}
	p.Apply(blog)
	assert.Equal(t, "Old title", blog.Title)
	assert.Equal(t, "old", blog.Slug)
	assert.Equal(t, models.BlogStatusPublished, blog.Status)
}

func TestValidateUpdate_RulesStillApply(t *testing.T) {
	_, err := ValidateUpdate(&BlogInput{Slug: utils.P("Hello World!"), Status: utils.P("")})

	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "slug")
	assert.Contains(t, errs, "status")
	assert.NotContains(t, errs, "title")
}

func TestValidateUpdate_ClearsOptional(t *testing.T) {
	p, err := ValidateUpdate(&BlogInput{FeaturedImage: utils.P(""), Content: utils.P("<script>x</script>New body text")})
	require.NoError(t, err)

	blog := &models.Blog{FeaturedImage: "https://example.com/a.png"}
	p.Apply(blog)
	assert.Empty(t, blog.FeaturedImage)
	assert.Equal(t, "New body text", blog.Content)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Hello", Sanitize("<script>alert(1)</script>Hello"))
	assert.Equal(t, `<a href="https://example.com" rel="nofollow">x</a>`, Sanitize(`<a href="https://example.com">x</a>`))
	assert.NotContains(t, Sanitize(`<a href="javascript:alert(1)">x</a>`), "javascript:")
	assert.NotContains(t, Sanitize(`<img src="x.png" onerror="alert(1)">`), "onerror")

	for _, in := range []string{
		"<p>Plain <em>safe</em> text</p>",
		"a & b < c",
		`<script>alert(1)</script><p onclick="x()">Hi</p>`,
	} {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "sanitize should be idempotent for %q", in)
	}
}
