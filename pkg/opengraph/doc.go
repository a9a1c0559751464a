// Package opengraph reads Open Graph <meta property="og:..."> tags out of
// HTML documents into an Object that can be classified and validated
// against a schema table.
//
//	obj, ok := opengraph.Fetch(ctx, "https://www.rottentomatoes.com/m/1217700-kick_ass/",
//		opengraph.WithExtension(opengraph.FacebookExtension))
//	if ok && obj.Is("product") {
//		fmt.Println(obj.Title(), obj.Text("admins"))
//	}
package opengraph
