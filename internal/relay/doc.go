// Package relay forwards one food search to the FatSecret REST API and
// passes the answer back unchanged.
//
// Relay.Search performs the round trip: obtain a bearer token, build the
// foods.search.v2 URL with fixed paging (five results, page zero), issue the
// GET and return the upstream status and raw body. Upstream error statuses are
// results, not errors.
//
// Relay also serves GET /search?q=<text>. Successful round trips are relayed
// verbatim with Content-Type application/json. Any local failure, whether a
// token error or a transport error, becomes a 500 with {"error": "<message>"}.
package relay
