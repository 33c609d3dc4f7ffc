package usecase

// Context bounds
const (
	MaxResultsInContext = 3   // Top-3 search hits
	MaxCharsPerResult   = 400 // Truncate each result body to 400 chars
)

// Web search context templates
const (
	PromptWebContextHeader = "Contexte issu d'une recherche web :\n\n"

	PromptWithWebContext = `%s
En te basant sur le contexte ci-dessus, réponds à la question suivante : "%s"
Si le contexte ne suffit pas, utilise tes connaissances générales et l'historique de notre conversation.
`

	PromptWebSearchEmpty = `[Mode recherche web activé]
Question : "%s"
Note: Une recherche web a été tentée mais n'a pas retourné de résultats exploitables. Je vais répondre avec mes connaissances générales.
`

	PromptWebSearchFailed = `[Mode recherche web activé]
Question : "%s"
Note: Une recherche web a été tentée mais a échoué. Je vais répondre avec mes connaissances générales.
`
)

// Uploaded file context templates
const (
	PromptFilesHeader = "Fichiers uploadés :\n\n"

	PromptFileSection = "--- Fichier : %s ---\n%s\n\n"

	PromptFilesInstruction = `Analyse les fichiers ci-dessus et réponds à la question suivante : "%s"
`
)
