package slides

import "testing"

func TestParseWellFormedBlocks(t *testing.T) {
	raw := `--- SLIDE 1 ---
TÍTULO: Introdução ao Teorema
CONTEÚDO: O que diz o teorema de Pitágoras
e onde ele aparece no cotidiano.
--- SLIDE 2 ---
TÍTULO: Demonstração
CONTEÚDO: Demonstração geométrica com quadrados.
--- SLIDE 3 ---
TÍTULO: Exercícios
CONTEÚDO: Três exercícios guiados.`

	got := Parse(raw)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	wantTitles := []string{"Introdução ao Teorema", "Demonstração", "Exercícios"}
	for i, title := range wantTitles {
		if got[i].Title != title {
			t.Errorf("slide %d title = %q, want %q", i, got[i].Title, title)
		}
	}
	if got[0].Body != "O que diz o teorema de Pitágoras\ne onde ele aparece no cotidiano." {
		t.Errorf("slide 0 body = %q", got[0].Body)
	}
}

func TestParseCaseInsensitiveDelimiter(t *testing.T) {
	raw := "--- slide 1 ---\ntítulo: Um\nconteúdo: Primeiro conteúdo do slide.\n--- Slide 2 ---\nTÍTULO: Dois\nCONTEÚDO: Segundo conteúdo do slide."
	got := Parse(raw)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Title != "Um" || got[1].Title != "Dois" {
		t.Errorf("titles = %q, %q", got[0].Title, got[1].Title)
	}
}

func TestParseNoDelimiter(t *testing.T) {
	raw := "  Aqui está um texto corrido sem nenhum marcador de slide.  "
	got := Parse(raw)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Title != FallbackTitle {
		t.Errorf("title = %q, want fallback %q", got[0].Title, FallbackTitle)
	}
	if got[0].Body != "Aqui está um texto corrido sem nenhum marcador de slide." {
		t.Errorf("body = %q", got[0].Body)
	}
}

func TestParseMissingTitleAndBody(t *testing.T) {
	raw := "--- SLIDE 1 ---\nApenas um bloco de texto sem as marcações esperadas."
	got := Parse(raw)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Title != FallbackTitle {
		t.Errorf("title = %q, want fallback", got[0].Title)
	}
	if got[0].Body != "Apenas um bloco de texto sem as marcações esperadas." {
		t.Errorf("body = %q", got[0].Body)
	}
}

func TestParseDiscardsSplitArtifacts(t *testing.T) {
	raw := "--- SLIDE 1 ---\n  \n--- SLIDE 2 ---\nTÍTULO: Real\nCONTEÚDO: Conteúdo real do único slide."
	got := Parse(raw)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Title != "Real" {
		t.Errorf("title = %q, want Real", got[0].Title)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Errorf("Parse(\"\") = %v, want empty", got)
	}
}
