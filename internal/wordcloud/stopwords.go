package wordcloud

import "strings"

// englishStopwords is the usual glue-word list. Contractions appear
// without apostrophes because punctuation is stripped before lookup.
const englishStopwords = `
a about above after again against all am an and any are as at be
because been before being below between both but by did do does doing
down during each for from further had has have having he her here hers
herself him himself his how i if in into is it its itself me more most
my myself no nor not of off on once only or other ought our ours
ourselves out over own same she so some such than that the their theirs
them themselves then there these they this those through to too under
until up very was we were what when where which while who whom why with
you your yours yourself yourselves
`

// financialStopwords drops the boilerplate that dominates every finance
// thread. Without these, every cloud reads stock/market/buy.
const financialStopwords = `
stock stocks market markets trade trading trader invest investing
investment investor money price prices buy sell call put option options
share shares just like going get got think know really make made one
now would could should will year month day today tomorrow yesterday
week good bad high low much many few lot big small http https com www
amp im dont cant wont isnt ive thats theyre youre theyll reddit comment
post submission thread retard retards ape apes wallstreetbets wsb
`

var stopwords = func() map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(englishStopwords + financialStopwords) {
		set[w] = true
	}
	return set
}()
