// Package branding centralizes product naming used across services.
package branding

// AppName is the user-facing product name.
const AppName = "TextData"

// Tagline is the short product description used on public pages.
const Tagline = "A community digital library for saving and finding webpages"
