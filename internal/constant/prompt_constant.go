package constant

// Persona compartilhada por todos os prompts deste serviço.
const SystemInstruction = `
Aja como um mestre escolar brasileiro, um mago da pedagogia.
Você é especialista em BNCC e metodologias de ensino.
Sua tarefa é criar materiais didáticos precisos, eficientes e engajadores.
Sempre siga os códigos de habilidade fornecidos e valide suas escolhas com a base técnica da BNCC.
`

// SuggestSkillsPromptTemplate espera: ano, disciplina, assunto, lista de
// habilidades (uma por linha). O modelo deve devolver apenas linhas exatas
// da lista; a interseção com o catálogo é reforçada pelo chamador.
const SuggestSkillsPromptTemplate = `
Com base no Ano: %s, Disciplina: %s e Assunto: "%s".
Dentre estas habilidades da BNCC:
%s

Quais são as 2 ou 3 mais pertinentes? Retorne APENAS os códigos/textos exatos das habilidades selecionadas, um por linha.
`

const QuestionsPromptTemplate = `
Crie %d questões para o nível: %s.
Disciplina: %s.
Assunto: "%s".
Contexto Pedagógico: %s.
Habilidades BNCC selecionadas: %s.
Detalhes Adicionais da BNCC solicitados pelo professor: %s.
Idioma: %s.
Outros detalhes: %s.

%s

ESTRUTURA DA RESPOSTA:
1. Cabeçalho Escolar Completo.
2. Enunciados claros e objetivos, contextualizados.
3. Para questões de múltipla escolha, use 5 alternativas (A a E).
4. Gabarito detalhado e comentado ao final.
`

const SlidesPromptTemplate = `
Crie uma apresentação de slides COMPLETA e PRONTA PARA USO com exatamente %d slides.
Assunto: "%s".
Disciplina: %s.
Série/Ano: %s.
Contexto da Turma: %s.
Duração estimada da aula: %s.
Idioma: %s.
Habilidades BNCC: %s.
Detalhes adicionais: %s.

%s

IMPORTANTE: Formate cada slide separado por "--- SLIDE [NÚMERO] ---".
Cada slide deve ter um "TÍTULO: [Texto]" e "CONTEÚDO: [Tópicos detalhados]".
`

const LessonPlanPromptTemplate = `
Crie um Plano de Aula estruturado para o período: %s.
Ano de escolaridade: %s.
Disciplina: %s.
Planejamento Multidisciplinar: %s.
Dias da semana: %s.
Habilidades BNCC: %s.
Detalhes Adicionais: %s.

ESTRUTURA DO PLANO:
1. Objetivos Gerais e Específicos.
2. Sequência Didática detalhada por aula/dia.
3. Metodologias e Recursos Necessários.
4. Avaliação e Critérios.
`

const EssayCorrectionPromptTemplate = `
Corrija a redação a seguir para o nível: %s.
Disciplina: %s.
Tema: "%s".
Idioma: %s.
Observações do professor: %s.

%s

ESTRUTURA DA CORREÇÃO:
1. Avaliação por competência com nota parcial.
2. Apontamentos de gramática, coesão e coerência com exemplos do texto.
3. Sugestões de reescrita construtivas.
4. Nota final justificada.
`

const ThematicImagePromptTemplate = `Uma ilustração didática e elegante para um slide escolar sobre o tema: "%s" da disciplina de %s. Estilo limpo, acadêmico, sem textos confusos, cores suaves.`

// Ramificações de texto usadas quando há arquivo anexo.
const (
	FileAttachedQuestionsNote = "Utilize o conteúdo do arquivo anexo como base extra para as questões."
	FileAttachedSlidesNote    = "Utilize o conteúdo do arquivo anexo como base de informação principal para os slides."
	FileAttachedEssayNote     = "A redação do estudante está no arquivo anexo."
)

// Cabeçalhos da seção de fontes quando o grounding retorna citações.
const (
	SourcesHeaderQuestions = "### Fontes de Pesquisa (Validação Pedagógica):"
	SourcesHeaderSlides    = "### Fontes de Pesquisa Consultadas:"
)
