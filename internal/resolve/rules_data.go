package resolve

// The shipped QUIT IT tables. Order is precedence: the matcher walks top to
// bottom and the first hit wins, so keep specific entries (express post,
// international) above the general ones (shipping). A few facts appear
// twice under different ids because customers phrase them very differently;
// the earlier entry wins and the later one stays reachable for phrasings
// the earlier triggers miss.

// DefaultRules is the pattern rule table matched against the raw question.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:       "greeting",
			Patterns: pats(`^\s*(hi|hello|hey|yo|sup|g'?day)\b`),
			Answer:   "Hi there! 😊 How can I help today? You can ask about shipping, flavour cores, safety, or returns.",
		},
		{
			ID:       "afterpay",
			Patterns: pats(`\bafter\s*pay\b`, `\bzip\s*pay\b`, `buy now,? pay later`),
			Answer:   "Yes! We offer **Afterpay** at checkout, so you can split your order into four interest-free payments. Just pick Afterpay as your payment method when you check out 😊",
		},
		{
			ID:       "express-post",
			Patterns: pats(`\bexpress\b.*\b(post|shipping|delivery)\b`, `\bovernight\b.*\b(post|shipping|delivery)\b`, `next.?day delivery`),
			Answer:   "We sure do! **Express Post** is available at checkout and usually arrives in 1–2 business days within Australia.",
		},
		{
			ID:       "international-shipping",
			Patterns: pats(`\b(international|overseas|worldwide)\b.*\b(ship|shipping|deliver|delivery|post)\b`, `ship (to|outside)\b`, `\bnew zealand\b`),
			Answer:   "At the moment we only ship within Australia. We're working on international shipping — keep an eye on our socials for updates! 🌏",
		},
		{
			ID:       "shipping-times",
			Patterns: pats(`how long.*\b(ship|shipping|delivery|deliver|arrive|post)\b`, `\bshipping\b.*\b(time|take|long)\b`, `when.*\b(arrive|get here|delivered)\b`),
			Answer:   "Orders placed before 2pm AEST ship the same business day. Standard shipping usually takes 3–7 business days, Express Post 1–2 business days. You'll get a tracking link by email as soon as your order leaves us 📦",
		},
		{
			ID:       "tracking",
			Patterns: pats(`\btrack(ing)?\b.*\border\b`, `where('?s| is) my (order|package|parcel)`, `\btracking number\b`),
			Answer:   "You can track your order any time at quititaus.com.au/apps/track123 — just pop in your order number and email. Your tracking number is also in your shipping confirmation email.",
		},
		{
			ID:       "refunds-returns",
			Patterns: pats(`\brefunds?\b`, `\breturns?\b`, `\bmoney.?back\b`, `change(d)? my mind`),
			Answer:   "We want you to love QUIT IT! Unopened products can be returned within 30 days of delivery for a full refund. For hygiene reasons we can't accept opened flavour cores. Email support@quititaus.com.au with your order number and we'll sort you out 😊",
		},
		{
			ID:       "flavour-recommend",
			Patterns: pats(`which flavour`, `what flavour.*\b(pick|choose|start|recommend|best)\b`, `recommend.*flavour`),
			Answer:   "Great question! **Classic Tobacco** is the most popular pick for fresh quitters because it feels familiar, while **Cool Mint** is our best seller overall. If you like something fruity, **Mixed Berry** is a favourite too. The Starter Pack lets you try a few and see what sticks 😊",
		},
		{
			ID:       "flavour-list",
			Patterns: pats(`what flavours`, `flavours? (do you|are) (have|available|there)`, `list of flavours`),
			Answer:   "We currently have Cool Mint, Classic Tobacco, Mixed Berry, Citrus Burst and Coffee flavour cores. New flavours drop every few months!",
		},
		{
			ID:       "core-lifespan",
			Patterns: pats(`how long.*\b(cores?|flavour|last)\b.*\blast\b`, `\bcores?\b.*\bhow long\b`, `lifespan`),
			Answer:   "Each flavour core lasts roughly **1 week** with regular use before the flavour starts to fade. A 4-pack typically sees most people through a month.",
		},
		{
			ID:       "sold-out",
			Patterns: pats(`sold out`, `out of stock`, `\brestock(ing|ed)?\b`),
			Answer:   "Sorry about that — popular flavours do sell out fast! Restocks usually land within 2 weeks. Hit **Notify Me** on the product page and we'll email you the moment it's back 🙌",
		},
		{
			ID:       "safety",
			Patterns: pats(`\bsafe\b`, `\bsafety\b`, `\bside effects?\b`, `\bharmful\b`, `\btoxic\b`),
			Answer:   "QUIT IT is a nicotine-free, vapour-free device — nothing is burned or inhaled into your lungs except flavoured air. The flavour cores use food-grade ingredients. If you have a medical condition, have a chat with your GP first — we can't give medical advice 😊",
		},
		{
			ID:       "nicotine",
			Patterns: pats(`\bnicotine\b`, `\btobacco\b.*\bcontain`, `contain.*\btobacco\b`),
			Answer:   "Nope — QUIT IT contains **zero nicotine** and zero tobacco. It's designed to replace the hand-to-mouth habit, not the chemical hit.",
		},
		{
			ID:       "feels-like-cigarette",
			Patterns: pats(`feels? like a (cig|cigarette|smoke|vape)`, `\bdraw\b.*\bresistance\b`, `like smoking`),
			Answer:   "That's the idea! The mouthpiece is weighted and shaped like a cigarette, and the airflow is tuned to give a similar draw resistance — minus the smoke, vapour and nicotine.",
		},
		{
			ID:       "battery-charging",
			Patterns: pats(`\bbatter(y|ies)\b`, `\bcharg(e|ing|er)\b`, `\busb\b`),
			Answer:   "No battery, no charging, ever! QUIT IT is completely electronics-free — just the device and the flavour core. Nothing to plug in, nothing to go flat 🔋🚫",
		},
		{
			ID:       "cleaning",
			Patterns: pats(`\bclean(ing)?\b.*\b(device|quit ?it|it)\b`, `\bwash\b`, `\bhygien(e|ic)\b`),
			Answer:   "Easy: rinse the mouthpiece under warm water (no soap needed) and let it air dry with the flavour core removed. A quick rinse once a week keeps it fresh.",
		},
		{
			ID:       "out-of-stock-alt",
			Patterns: pats(`when.*\bback in stock\b`, `\bavailability\b`, `\bwaitlist\b`),
			Answer:   "Popular flavours do sell out fast — restocks usually land within 2 weeks. Tap **Notify Me** on the product page to get an email the moment it's back.",
		},
		{
			ID:       "discount",
			Patterns: pats(`\bdiscount\b`, `\bpromo\b`, `\bcoupon\b`, `\bsale\b`, `\bcode\b.*\bwork`),
			Answer:   "We run sales a few times a year — the best way to catch them is our email list (sign-up is at the bottom of the homepage, and it comes with 10% off your first order 😉). Only one code can be used per order.",
		},
		{
			ID:       "wholesale",
			Patterns: pats(`\bwholesale\b`, `\bstockist\b`, `\bbulk order\b`, `\bretail(er)?\b.*\bstock\b`),
			Answer:   "We'd love to chat! For wholesale and stockist enquiries, email support@quititaus.com.au with \"Wholesale\" in the subject and the team will get back to you within 2 business days.",
		},
		{
			ID:       "contact-human",
			Patterns: pats(`\b(talk|speak) to (a )?(human|person|someone)\b`, `\bcustomer (service|support)\b`, `\bphone number\b`, `\bemail address\b`),
			Answer:   "Of course! You can reach our (very human) team at **support@quititaus.com.au** or through the contact form at quititaus.com.au/pages/contact. We usually reply within one business day 😊",
		},
	}
}

// DefaultIntents is the keyword fallback table matched against the
// normalized question. Looser than the rules above, so it sits behind them.
func DefaultIntents() []Intent {
	return []Intent{
		{ID: "shipping", Phrases: []string{"shipping", "postage", "delivery"}, Answer: "Standard shipping within Australia takes 3–7 business days and Express Post 1–2. Orders before 2pm AEST ship the same business day 📦"},
		{ID: "tracking", Phrases: []string{"track", "tracking"}, Answer: "Track your order any time at quititaus.com.au/apps/track123 using your order number and email."},
		{ID: "returns", Phrases: []string{"return", "refund", "exchange"}, Answer: "Unopened products can be returned within 30 days for a full refund — email support@quititaus.com.au with your order number and we'll sort it out."},
		// Deliberately narrow: a bare "flavour" phrase would swallow the
		// "what's inside the flavour cores" questions that belong to the
		// retrieval stage.
		{ID: "flavours", Phrases: []string{"flavours do", "flavour options", "taste like"}, Answer: "We have Cool Mint, Classic Tobacco, Mixed Berry, Citrus Burst and Coffee cores. Cool Mint is the crowd favourite, Classic Tobacco the easiest switch for fresh quitters 😊"},
		{ID: "stock", Phrases: []string{"sold out", "in stock", "restock"}, Answer: "Restocks usually land within 2 weeks — hit Notify Me on the product page and we'll email you the moment it's back."},
		{ID: "safety", Phrases: []string{"safe", "health", "side effect"}, Answer: "QUIT IT is nicotine-free and vapour-free — nothing is burned or inhaled except flavoured air. For anything medical, please check with your GP."},
		{ID: "nicotine", Phrases: []string{"nicotine"}, Answer: "Zero nicotine, zero tobacco — QUIT IT replaces the hand-to-mouth habit, not the chemical hit."},
		{ID: "payment", Phrases: []string{"afterpay", "payment", "pay later"}, Answer: "We accept all major cards, PayPal and Afterpay at checkout 😊"},
		{ID: "warranty", Phrases: []string{"warranty", "broken", "faulty", "damaged"}, Answer: "Oh no! If anything arrives damaged or faulty, email support@quititaus.com.au with a photo and your order number and we'll replace it straight away."},
		{ID: "contact", Phrases: []string{"contact", "support", "help me"}, Answer: "You can reach the team at support@quititaus.com.au or via quititaus.com.au/pages/contact — we usually reply within one business day."},
		// Registered but not yet written up; the matcher skips empty
		// answers so this never produces a blank reply.
		{ID: "subscription", Phrases: []string{"subscription", "subscribe and save"}, Answer: ""},
	}
}
