// Package phonetic annotates long English words with IPA transcriptions.
// Transcriptions come from espeak-ng, an OpenAI chat model or a local JSON
// dictionary; every failure degrades to leaving the word unannotated.
package phonetic
