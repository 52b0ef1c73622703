// Package models lists the OpenAI models available to an API key and
// groups them by what dailyread can use them for: chat models translate
// text and transcribe words, the rest are shown for completeness.
package models
