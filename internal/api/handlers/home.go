package handlers

import "net/http"

// Home serves the API documentation page.
func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(homePage))
}

const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>Crisis Center Finder API</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 40px auto; padding: 0 20px; line-height: 1.6; }
        code { background: #f4f4f4; padding: 2px 5px; border-radius: 3px; }
        pre { background: #f4f4f4; padding: 15px; border-radius: 5px; overflow-x: auto; }
    </style>
</head>
<body>
    <h1>Crisis Center Finder API</h1>
    <p>Welcome to the Finnish Crisis Center Finder API. This service helps locate the nearest crisis center based on your city location.</p>

    <h2>Available Endpoints:</h2>
    <h3>1. Find Nearest Center</h3>
    <p><code>GET /find-nearest</code></p>
    <p><strong>Parameters:</strong></p>
    <ul>
        <li><code>city</code> (required): Name of the city in Finland</li>
    </ul>

    <h3>2. List Centers</h3>
    <p><code>GET /centers</code> &mdash; full catalog with count</p>

    <h3>3. Search Centers</h3>
    <p><code>GET /centers/search?region=&lt;substring&gt;</code> &mdash; case-insensitive region filter</p>

    <h3>4. Center Details</h3>
    <p><code>GET /centers/&lt;region&gt;</code> &mdash; exact region lookup</p>

    <h3>Example Request:</h3>
    <pre>GET /find-nearest?city=Helsinki</pre>

    <h3>Example Response:</h3>
    <pre>
{
    "queried_city": "Helsinki",
    "coordinates_source": "geocoded",
    "nearest_center": {
        "region": "Helsinki",
        "name": "Helsingin kriisikeskus",
        "phone": "09 4135 0510",
        "distance_km": 0.0
    },
    "emergency_contacts": {
        "national_crisis_line": "09 25250111",
        "emergency_number": "112"
    }
}
    </pre>

    <h2>Emergency Contact</h2>
    <p>National Crisis Helpline: 09 25250111 (24/7)</p>
    <p>Emergency Number: 112</p>
</body>
</html>
`
