// Package translation translates text through a remote provider while
// respecting the provider's per-call size limit. Oversized input is split
// at sentence boundaries, translated chunk by chunk and joined again.
package translation
