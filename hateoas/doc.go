// Package hateoas attaches hypermedia links to shaped responses.
//
// Links are only added when the client negotiated one of the hypermedia
// media types; otherwise every composer returns its input untouched and the
// "links" key is absent from the output.
//
//	negotiated := hateoas.IsHypermediaType(c.NegotiateFormat(hateoas.MediaTypes...))
//	env = hateoas.ComposeCollection(env, habits, habitLinks, collectionLinks, negotiated)
//
// Link factories are supplied by the caller. A Builder turns named route
// templates into absolute hrefs for them:
//
//	b := hateoas.NewBuilder("https://api.example.com")
//	b.Register("habits.get", "/habits/:id")
//	b.Create("habits.get", hateoas.RelSelf, http.MethodGet, hateoas.Params{"id": h.ID}, nil)
package hateoas
