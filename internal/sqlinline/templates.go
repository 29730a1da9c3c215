package sqlinline

const QListActiveTemplates = `--sql 9d60d084-340b-439a-a08a-ad4f7befccac
select id, slug, title, category, description, emoji, sort_order, active, created_at, updated_at
from goal_templates
where active
  and ($1::text = '' or category = $1::text)
order by sort_order asc, title asc;
`

const QSelectTemplateByID = `--sql 0e154703-3ae3-48b5-9fc8-bfd8b0117a2a
select id, slug, title, category, description, emoji, sort_order, active, created_at, updated_at
from goal_templates
where id = $1::uuid
limit 1;
`

const QUpsertTemplateBySlug = `--sql 1cde5333-1bb8-4c42-9947-f122884cef9a
insert into goal_templates (id, slug, title, category, description, emoji, sort_order, active, created_at, updated_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::text, $5::text, $6::int, $7::boolean, now(), now())
on conflict (slug) do update set
    title = excluded.title,
    category = excluded.category,
    description = excluded.description,
    emoji = excluded.emoji,
    sort_order = excluded.sort_order,
    active = excluded.active,
    updated_at = now()
returning id, slug, title, category, description, emoji, sort_order, active, created_at, updated_at;
`
