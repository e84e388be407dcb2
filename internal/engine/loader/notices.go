package loader

import (
	"encoding/json"
	"html"
	"strings"

	"go.trai.ch/assetloader/internal/core/domain"
)

const (
	sslDetectionID       = "assetloader-ssl-detection"
	sslFilterID          = "assetloader-ssl-onerror"
	debugWarningID       = "assetloader-script-debug-warning"
	sslDetectionPriority = 5
	debugWarningPriority = 100

	onErrorAttribute = `onerror="maybeSSLError && maybeSSLError( this );"`
)

// ScriptDebugWarning is shown when hot reloading is requested without script debugging.
const ScriptDebugWarning = "Hot reloading was requested but SCRIPT_DEBUG is false. " +
	"Your bundle will not load. Please enable SCRIPT_DEBUG or disable hot reloading."

// sslDetectionScript collects dev-server scripts that failed to load and, once
// the page settled, lists their hosts in an editor notice. Failed loads from
// an HTTPS localhost server almost always mean an untrusted certificate.
const sslDetectionScript = `<script>
( function() {
	var scriptsWithErrors = [];

	window.maybeSSLError = function( script ) {
		scriptsWithErrors.push( script );
	};

	function processErrors() {
		if ( ! scriptsWithErrors.length ) {
			return;
		}

		var notices = null;
		if ( window.wp && window.wp.data && window.wp.data.dispatch ) {
			notices = window.wp.data.dispatch( 'core/notices' );
		}
		if ( ! notices ) {
			return;
		}

		var hosts = scriptsWithErrors.reduce(
			function( hosts, script ) {
				var src = script.getAttribute( 'src' );
				if ( ! src || ! /https:\/\/localhost/i.test( src ) ) {
					return hosts;
				}
				src = src.replace( /^(https:\/\/localhost:\d+).*$/i, '$1' );
				hosts[ src ] = true;
				return hosts;
			},
			{}
		);
		hosts = Object.keys( hosts );

		const messageHTML = [
			'<strong>Error loading scripts from localhost!</strong>',
			'<br>',
			'Ensure that ',
			( hosts.length > 1 ? 'these hosts are ' : 'this host is ' ),
			'accessible, and that you have accepted any development server SSL certificates:',
			'<ul>',
			hosts.map( host => '<li><a target="_blank" href="' + host + '">' + host + '</a></li>' ).join( '' ),
			'</ul>'
		].join( '' );

		notices.createErrorNotice( messageHTML, { __unstableHTML: true } );
	}

	document.addEventListener( 'DOMContentLoaded', function() {
		setTimeout( processErrors, 1000 );
	} );
} )();
</script>
`

// SetupSSLErrorHandling prepares the admin screen to report dev-server
// scripts that fail to load over HTTPS from localhost. It acts at most once
// per session, and only when one of uris is served from such an origin.
func (s *Session) SetupSSLErrorHandling(uris ...string) {
	if s.sslHandled || !s.env.Admin {
		return
	}
	if len(domain.LocalhostHTTPSOrigins(uris)) == 0 {
		return
	}

	s.hooks.AddHeadFragment(sslDetectionID, sslDetectionPriority, sslDetectionScript)
	s.hooks.AddScriptTagFilter(sslFilterID, AddOnErrorToScripts)
	s.sslHandled = true
}

// AddOnErrorToScripts injects the error reporting attribute into script tags
// loaded from an HTTPS localhost server.
func AddOnErrorToScripts(tag, _, src string) string {
	if !domain.IsLocalhostHTTPS(src) {
		return tag
	}
	return strings.Replace(tag, "<script", "<script "+onErrorAttribute, 1)
}

// WarnIfScriptDebugDisabled tells the developer that a hot-reloading bundle
// will not load because the host serves minified scripts. It warns once per
// session: in an editor notice on admin screens, in a page banner on local
// front ends, and through the logger everywhere else.
func (s *Session) WarnIfScriptDebugDisabled() {
	if s.debugWarned || s.env.ScriptDebug {
		return
	}
	s.debugWarned = true

	switch {
	case s.env.Admin:
		s.registry.EnqueueScript(domain.DataScriptHandle)
		s.hooks.AddFooterFragment(debugWarningID, debugWarningPriority, editorDebugWarning())
	case s.env.IsLocal():
		s.hooks.AddFooterFragment(debugWarningID, debugWarningPriority, frontendDebugWarning())
	default:
		s.logger.Warn(ScriptDebugWarning)
	}
}

func editorDebugWarning() string {
	message, _ := json.Marshal(ScriptDebugWarning)
	return `<script>
window.addEventListener( 'DOMContentLoaded', () => {
	wp.data.dispatch( 'core/notices' ).createNotice(
		'warning',
		` + string(message) + `,
		{
			isDismissible: false,
		}
	);
} );
</script>
`
}

func frontendDebugWarning() string {
	return `<div style="z-index:100000;border-top:5px solid red;background:white;padding:1rem;width:100%;position:fixed;bottom:0;">` +
		html.EscapeString(ScriptDebugWarning) +
		"</div>\n"
}
