// Package stylist is a deterministic fashion recommendation engine: it
// matches catalog items to occasions, natural-language requests and anchor
// items with a fixed additive scoring rule set, and curates complete outfits.
//
// The same engine is exposed two ways: embed it with New, or run the HTTP
// service in cmd/stylist.
//
//	client, err := stylist.New(stylist.WithCatalogFile("config/catalog.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	matches, err := client.MatchChat(ctx, "elegant black heels for a party", 6)
//
// All operations are deterministic: the same catalog and the same request
// always produce the same ranking.
package stylist
