package sentiment

import (
	"strings"
	"unicode"
)

// assessment is one entry of the base estimator's general-English lexicon.
type assessment struct {
	polarity     float64 // -1 to 1
	subjectivity float64 // 0 to 1
}

const (
	// negationDamp flips and weakens an assessment preceded by a negator.
	negationDamp = -0.5

	// negationScope is how many tokens before a hit are checked for a
	// negator.
	negationScope = 2
)

// estimate produces the base polarity and subjectivity for a text by
// averaging general-English lexicon assessments. A booster directly
// before a hit scales it; a negator within two tokens before a hit flips
// it. Texts with no assessed words come back as (0, 0).
func (a *Analyzer) estimate(text string) (polarity, subjectivity float64) {
	tokens := tokenize(text)

	var polSum, subSum float64
	var hits int

	for i, tok := range tokens {
		as, ok := a.assessments[tok]
		if !ok {
			continue
		}

		p := as.polarity
		if i > 0 {
			if factor, boosted := a.boosters[tokens[i-1]]; boosted {
				p = clamp(p*factor, -1.0, 1.0)
			}
		}
		for j := i - negationScope; j < i; j++ {
			if j >= 0 && a.negators[tokens[j]] {
				p *= negationDamp
				break
			}
		}

		polSum += p
		subSum += as.subjectivity
		hits++
	}

	if hits == 0 {
		return 0, 0
	}
	return clamp(polSum/float64(hits), -1.0, 1.0), clamp(subSum/float64(hits), 0.0, 1.0)
}

// tokenize splits text into lowercase words, dropping punctuation.
func tokenize(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(unicode.ToLower(r))
		} else if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// boosterFactors returns degree adverbs that scale the assessment of the
// word right after them.
func boosterFactors() map[string]float64 {
	return map[string]float64{
		"very":         1.3,
		"really":       1.25,
		"extremely":    1.5,
		"incredibly":   1.5,
		"insanely":     1.5,
		"ridiculously": 1.4,
		"absolutely":   1.4,
		"utterly":      1.4,
		"completely":   1.35,
		"super":        1.35,
		"totally":      1.3,
		"highly":       1.3,
		"so":           1.2,
		"too":          1.15,
		"quite":        1.1,
		"pretty":       1.1,
		"fairly":       0.9,
		"rather":       0.9,
		"mostly":       0.9,
		"almost":       0.85,
		"nearly":       0.85,
		"somewhat":     0.8,
		"kinda":        0.8,
		"sorta":        0.8,
		"slightly":     0.7,
		"barely":       0.6,
		"hardly":       0.6,
	}
}

// wordAssessments returns the general-English polarity/subjectivity
// lexicon used for the base estimate. Values follow the usual
// adjective/adverb polarity-averaging conventions; finance jargon is
// deliberately absent and handled by the finance lexicon instead.
func wordAssessments() map[string]assessment {
	return map[string]assessment{
		// Positive
		"good":        {0.70, 0.60},
		"great":       {0.80, 0.75},
		"excellent":   {1.00, 1.00},
		"amazing":     {0.70, 0.90},
		"awesome":     {0.90, 1.00},
		"fantastic":   {0.90, 0.90},
		"wonderful":   {0.90, 1.00},
		"incredible":  {0.80, 0.90},
		"perfect":     {1.00, 1.00},
		"best":        {1.00, 0.30},
		"better":      {0.50, 0.50},
		"nice":        {0.60, 1.00},
		"solid":       {0.50, 0.40},
		"impressive":  {0.80, 0.90},
		"outstanding": {0.90, 0.90},
		"superb":      {0.90, 1.00},
		"remarkable":  {0.70, 0.75},
		"brilliant":   {0.90, 0.90},
		"beautiful":   {0.85, 1.00},
		"happy":       {0.80, 1.00},
		"glad":        {0.60, 0.90},
		"excited":     {0.60, 0.80},
		"exciting":    {0.50, 0.80},
		"thrilled":    {0.80, 0.90},
		"love":        {0.60, 0.60},
		"enjoy":       {0.50, 0.50},
		"fun":         {0.40, 0.60},
		"confident":   {0.60, 0.80},
		"optimistic":  {0.70, 0.90},
		"hopeful":     {0.60, 0.80},
		"promising":   {0.50, 0.80},
		"success":     {0.70, 0.50},
		"successful":  {0.80, 0.60},
		"win":         {0.60, 0.50},
		"won":         {0.50, 0.50},
		"safe":        {0.50, 0.50},
		"healthy":     {0.50, 0.50},
		"strong":      {0.45, 0.75},
		"smart":       {0.60, 0.80},
		"genius":      {0.80, 0.90},
		"cheap":       {0.40, 0.70},
		"decent":      {0.30, 0.60},
		"stable":      {0.30, 0.50},
		"comfortable": {0.50, 0.60},
		"valuable":    {0.60, 0.80},
		"worth":       {0.30, 0.30},
		"proud":       {0.70, 0.90},
		"reliable":    {0.60, 0.70},
		"robust":      {0.50, 0.50},
		"efficient":   {0.50, 0.50},
		"effective":   {0.50, 0.50},
		"generous":    {0.60, 0.80},
		"fresh":       {0.40, 0.65},
		"clean":       {0.40, 0.60},
		"clear":       {0.20, 0.35},
		"easy":        {0.45, 0.85},
		"right":       {0.30, 0.55},
		"true":        {0.35, 0.65},
		"free":        {0.40, 0.80},
		"favorite":    {0.60, 1.00},
		"epic":        {0.80, 0.90},
		"sweet":       {0.55, 0.75},
		"legendary":   {0.70, 0.80},

		// Negative
		"bad":           {-0.70, 0.65},
		"terrible":      {-1.00, 1.00},
		"horrible":      {-1.00, 1.00},
		"awful":         {-1.00, 1.00},
		"worst":         {-1.00, 1.00},
		"worse":         {-0.60, 0.70},
		"poor":          {-0.60, 0.70},
		"sad":           {-0.50, 1.00},
		"unhappy":       {-0.60, 0.80},
		"angry":         {-0.60, 0.90},
		"mad":           {-0.60, 0.90},
		"fear":          {-0.60, 0.80},
		"afraid":        {-0.60, 0.90},
		"scared":        {-0.60, 0.90},
		"scary":         {-0.70, 0.90},
		"worried":       {-0.50, 0.80},
		"worrying":      {-0.50, 0.80},
		"concerned":     {-0.40, 0.70},
		"terrifying":    {-0.90, 1.00},
		"ugly":          {-0.70, 0.90},
		"stupid":        {-0.80, 0.90},
		"dumb":          {-0.70, 0.90},
		"ridiculous":    {-0.60, 0.90},
		"pathetic":      {-0.80, 0.90},
		"useless":       {-0.60, 0.80},
		"worthless":     {-0.80, 0.80},
		"broken":        {-0.40, 0.60},
		"fail":          {-0.50, 0.50},
		"failed":        {-0.60, 0.60},
		"failure":       {-0.60, 0.60},
		"wrong":         {-0.50, 0.55},
		"hard":          {-0.30, 0.55},
		"difficult":     {-0.40, 0.60},
		"painful":       {-0.70, 0.80},
		"pain":          {-0.60, 0.70},
		"nightmare":     {-0.80, 0.90},
		"disaster":      {-0.80, 0.70},
		"disastrous":    {-0.90, 0.90},
		"catastrophic":  {-0.90, 0.90},
		"dire":          {-0.70, 0.80},
		"grim":          {-0.60, 0.80},
		"bleak":         {-0.60, 0.80},
		"nasty":         {-0.70, 0.90},
		"toxic":         {-0.70, 0.80},
		"shady":         {-0.60, 0.80},
		"suspicious":    {-0.50, 0.70},
		"doubt":         {-0.30, 0.50},
		"doubtful":      {-0.40, 0.70},
		"unfortunate":   {-0.50, 0.80},
		"unfortunately": {-0.50, 1.00},
		"slow":          {-0.30, 0.40},
		"late":          {-0.30, 0.60},
		"dead":          {-0.60, 0.60},
		"dying":         {-0.60, 0.70},
		"hurt":          {-0.50, 0.70},
		"damage":        {-0.40, 0.50},
		"trouble":       {-0.40, 0.50},
		"problem":       {-0.30, 0.40},
		"crazy":         {-0.40, 0.90},
		"insane":        {-0.50, 1.00},
		"sick":          {-0.55, 0.90},
		"boring":        {-0.60, 0.90},
		"annoying":      {-0.60, 0.90},
		"frustrating":   {-0.60, 0.80},
		"disappointing": {-0.65, 0.80},
		"disappointed":  {-0.60, 0.75},
		"weak":          {-0.40, 0.60},
		"risky":         {-0.50, 0.70},
		"unlikely":      {-0.20, 0.70},

		// Opinion markers with little polarity of their own
		"think":      {0.00, 0.60},
		"believe":    {0.00, 0.65},
		"feel":       {0.00, 0.60},
		"feels":      {0.00, 0.60},
		"seems":      {0.00, 0.40},
		"maybe":      {0.00, 0.70},
		"perhaps":    {0.00, 0.70},
		"probably":   {0.00, 0.65},
		"possibly":   {0.00, 0.70},
		"apparently": {0.00, 0.60},
		"likely":     {0.00, 0.60},
		"honestly":   {0.00, 0.90},
		"literally":  {0.00, 0.80},
		"obviously":  {0.00, 0.90},
		"certainly":  {0.20, 0.80},
		"surely":     {0.25, 0.80},
		"actually":   {0.00, 0.50},
	}
}
